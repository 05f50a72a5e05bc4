package entities

import (
	"image/color"
	"testing"

	"github.com/decker502/cardstack/pkg/components"
	"github.com/decker502/cardstack/pkg/ecs"
	"github.com/decker502/cardstack/pkg/game"
	"github.com/decker502/cardstack/pkg/types"
)

func TestNewCardViewIsUnbound(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewCardView(em)

	card, ok := ecs.GetComponent[*components.CardViewComponent](em, id)
	if !ok {
		t.Fatal("card view should carry a CardViewComponent")
	}
	if card.Position != -1 || card.Key != types.NoItemKey {
		t.Errorf("new card view should be unbound, got position=%d key=%d", card.Position, card.Key)
	}
}

func TestBindCardView(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewCardView(em)
	item := game.CardItem{ID: 42, Color: color.RGBA{R: 1, A: 255}, Label: "42"}

	if !BindCardView(em, id, 42, item) {
		t.Fatal("BindCardView failed")
	}

	card, _ := ecs.GetComponent[*components.CardViewComponent](em, id)
	if card.Position != 42 || card.Key != 42 || card.Label != "42" || card.Color != item.Color {
		t.Errorf("unexpected binding: %+v", card)
	}

	other := em.CreateEntity()
	if BindCardView(em, other, 1, item) {
		t.Error("binding an entity without a card view should fail")
	}
}

func TestNewDisappearingCard(t *testing.T) {
	em := ecs.NewEntityManager()
	bounds := types.Rect{Left: 0, Top: 10, Right: 100, Bottom: 74}
	id := NewDisappearingCard(em, 7, game.CardItem{ID: 7, Label: "7"}, bounds)

	ghost, ok := ecs.GetComponent[*components.DisappearingComponent](em, id)
	if !ok {
		t.Fatal("ghost should carry a DisappearingComponent")
	}
	if ghost.Key != 7 || ghost.Bounds != bounds {
		t.Errorf("unexpected ghost: %+v", ghost)
	}
	card, _ := ecs.GetComponent[*components.CardViewComponent](em, id)
	if card.Attached {
		t.Error("ghost must not be attached")
	}
}

func TestNewSceneButton(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false
	id := NewSceneButton(em, types.SceneStack, nil, 10, 20, 56, func() { clicked = true })

	button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("button component missing")
	}
	if button.Text != "S" || button.Scene != types.SceneStack || !button.Enabled {
		t.Errorf("unexpected button: %+v", button)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("position: got (%v, %v)", pos.X, pos.Y)
	}
	button.OnClick()
	if !clicked {
		t.Error("OnClick was not wired")
	}
}
