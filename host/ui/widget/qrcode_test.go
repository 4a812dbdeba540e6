package widget

import (
	"testing"

	"github.com/mokiat/lacking/ui"
)

func TestImageSlot_Set(t *testing.T) {
	var released []*ui.Image
	slot := imageSlot{
		release: func(img *ui.Image) {
			released = append(released, img)
		},
	}

	first := new(ui.Image)
	second := new(ui.Image)

	slot.Set(first)
	if len(released) != 0 {
		t.Fatalf("released %d images on first set", len(released))
	}

	slot.Set(first)
	if len(released) != 0 {
		t.Fatal("setting the same image released it")
	}

	slot.Set(second)
	if len(released) != 1 || released[0] != first {
		t.Fatalf("released = %v, want the first image", released)
	}
	if slot.Image() != second {
		t.Error("slot does not hold the second image")
	}

	slot.Set(nil)
	if len(released) != 2 || released[1] != second {
		t.Fatalf("released = %v, want both images", released)
	}
	if slot.Image() != nil {
		t.Error("slot not cleared")
	}

	slot.Set(nil)
	if len(released) != 2 {
		t.Error("clearing an empty slot released an image")
	}
}
