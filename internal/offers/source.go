package offers

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"os"

	"github.com/fr4nk3nst1ner/offerboard/internal/client"
	"github.com/fr4nk3nst1ner/offerboard/internal/models"
	"github.com/fr4nk3nst1ner/offerboard/internal/utils"
)

//go:embed data/offers.yaml
var builtin []byte

// Builtin returns the catalogue compiled into the binary
func Builtin() []models.Offer {
	list, err := Decode(builtin)
	if err != nil {
		panic(fmt.Sprintf("embedded catalogue is invalid: %v", err))
	}
	return list
}

// Load resolves source to a catalogue. An empty source is the built-in catalogue,
// an http(s) URL is fetched with httpClient (a default client when nil), anything
// else is read as a local file.
func Load(ctx context.Context, source string, httpClient *http.Client) ([]models.Offer, error) {
	switch {
	case source == "":
		return Builtin(), nil
	case utils.IsRemoteSource(source):
		if httpClient == nil {
			httpClient = client.CreateHTTPClient("")
		}
		data, err := client.Fetch(ctx, httpClient, source)
		if err != nil {
			return nil, err
		}
		return Decode(data)
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read catalogue: %w", err)
		}
		return Decode(data)
	}
}
