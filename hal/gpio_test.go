package hal

import (
	"errors"
	"testing"
)

func TestPinButtonsActiveLow(t *testing.T) {
	sw := newSwitchPins()
	b, err := NewPinButtons(sw.buttonPins())
	if err != nil {
		t.Fatalf("NewPinButtons: %v", err)
	}

	pressed, err := b.Pressed(ButtonB)
	if err != nil {
		t.Fatalf("Pressed: %v", err)
	}
	if pressed {
		t.Fatal("expected released switch with pull-up")
	}

	sw.set(ButtonB, true)
	pressed, err = b.Pressed(ButtonB)
	if err != nil {
		t.Fatalf("Pressed: %v", err)
	}
	if !pressed {
		t.Fatal("expected pressed after pulling low")
	}

	sw.set(ButtonB, false)
	if pressed, _ = b.Pressed(ButtonB); pressed {
		t.Fatal("expected released after release")
	}
}

func TestPinButtonsUnwired(t *testing.T) {
	pin := newVirtualPin("GP0", GPIOCapInput)
	b, err := NewPinButtons([]ButtonPin{{Button: ButtonA, Pin: pin}})
	if err != nil {
		t.Fatalf("NewPinButtons: %v", err)
	}

	if _, err := b.Pressed(ButtonSleep); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}

	pin.drive(true)
	pressed, err := b.Pressed(ButtonA)
	if err != nil || !pressed {
		t.Fatalf("expected active-high press, got %v, %v", pressed, err)
	}
}

func TestPinButtonsConfigureError(t *testing.T) {
	pin := newVirtualPin("NC", 0)
	if _, err := NewPinButtons([]ButtonPin{{Button: ButtonA, Pin: pin}}); err == nil {
		t.Fatal("expected error for a pin without input")
	}
}

func TestDim(t *testing.T) {
	if got := dim(200, 0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := dim(200, 1); got != 200 {
		t.Fatalf("expected 200, got %d", got)
	}
	if got := dim(200, 0.5); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}
