package board_test

import (
	"reflect"
	"testing"

	"github.com/fr4nk3nst1ner/offerboard/internal/board"
	"github.com/fr4nk3nst1ner/offerboard/internal/models"
	"github.com/fr4nk3nst1ner/offerboard/internal/offers"
)

func TestCollectOptions_Builtin(t *testing.T) {
	got := board.CollectOptions(offers.Builtin())
	if !reflect.DeepEqual(got.Categories, []string{"Administratif", "Direction"}) {
		t.Fatalf("unexpected categories %v", got.Categories)
	}
	if !reflect.DeepEqual(got.Types, []string{"Mission Temporaire", "Permanent"}) {
		t.Fatalf("unexpected types %v", got.Types)
	}
}

func TestCollectOptions_SkipsEmptyAndDuplicates(t *testing.T) {
	list := []models.Offer{
		{ID: 1, Category: "Support", Type: "CDD"},
		{ID: 2, Category: "", Type: "CDI"},
		{ID: 3, Category: "Design", Type: ""},
		{ID: 4, Category: "Support", Type: "CDD"},
	}
	got := board.CollectOptions(list)
	if !reflect.DeepEqual(got.Categories, []string{"Design", "Support"}) {
		t.Fatalf("unexpected categories %v", got.Categories)
	}
	if !reflect.DeepEqual(got.Types, []string{"CDD", "CDI"}) {
		t.Fatalf("unexpected types %v", got.Types)
	}
}

func TestCollectOptions_Empty(t *testing.T) {
	got := board.CollectOptions(nil)
	if len(got.Categories) != 0 || len(got.Types) != 0 {
		t.Fatalf("expected no options, got %+v", got)
	}
}
