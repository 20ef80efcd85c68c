package logbook

import (
	"context"
	"strings"
	"time"
)

// Window es el rango temporal de un filtro. To nil = sin límite superior.
type Window struct {
	From time.Time
	To   *time.Time
}

func (w Window) Contains(t time.Time) bool {
	if t.Before(w.From) {
		return false
	}
	if w.To != nil && t.After(*w.To) {
		return false
	}
	return true
}

// LatestSource entrega el timestamp más reciente de un ave.
type LatestSource interface {
	LatestAt(ctx context.Context, birdID string) (time.Time, bool, error)
}

// Anchor decide dónde termina la ventana de "últimos N días".
// ok=false significa que no hay nada que filtrar (ave sin registros).
type Anchor interface {
	Window(ctx context.Context, src LatestSource, birdID string, days int, now time.Time) (Window, bool, error)
}

// LatestAnchor ancla la ventana al registro más reciente del ave:
// [latest - days, latest]. No depende del reloj, así que una carga atrasada
// de datos sigue viéndose igual.
type LatestAnchor struct{}

func (LatestAnchor) Window(ctx context.Context, src LatestSource, birdID string, days int, _ time.Time) (Window, bool, error) {
	latest, ok, err := src.LatestAt(ctx, birdID)
	if err != nil || !ok {
		return Window{}, false, err
	}
	return Window{From: latest.AddDate(0, 0, -days), To: &latest}, true, nil
}

// NowAnchor ancla la ventana al reloj: [now - days, ∞).
type NowAnchor struct{}

func (NowAnchor) Window(_ context.Context, _ LatestSource, _ string, days int, now time.Time) (Window, bool, error) {
	return Window{From: now.AddDate(0, 0, -days)}, true, nil
}

// AnchorFor traduce el valor de configuración ("latest" | "now"). Default: latest.
func AnchorFor(name string) Anchor {
	if strings.EqualFold(strings.TrimSpace(name), "now") {
		return NowAnchor{}
	}
	return LatestAnchor{}
}
