package world

import (
	"encoding/binary"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"

	"github.com/lixenwraith/skii/vmath"
)

// Scroll shifts the frame of reference n rows downhill. Obstacles that fall
// behind the skier are dropped, and each evicted row is replaced by a freshly
// generated one with its obstacles, so the grid height never changes.
func (w *World) Scroll(n int) {
	if n <= 0 {
		return
	}
	shift := float32(n)

	w.Player.Position[1] -= shift
	w.RealY += shift

	kept := w.objects[:0]
	for _, o := range w.objects {
		o.Position[1] -= shift
		if o.Position.Y() >= 0 {
			kept = append(kept, o)
		}
	}
	dropped := len(w.objects) - len(kept)
	w.objects = kept

	height := w.Height()
	for i := 0; i < n; i++ {
		w.tiles = w.tiles[1:]
		w.GenerateRow()
		// Rows still to be generated this call will push this one down;
		// a negative final row is evicted before the call returns
		if row := height - n + i; row >= 0 {
			w.GenerateObjects(row)
		}
	}

	w.log.WithFields(logrus.Fields{
		"rows":     n,
		"dropped":  dropped,
		"objects":  len(w.objects),
		"distance": w.RealY,
	}).Debug("world scrolled")
}

// Collided reports whether the run has ended: the skier left the course
// width, or stands inside an obstacle's hitbox (bounds inclusive)
func (w *World) Collided() bool {
	x := w.Player.Position.X()
	if x < 0 || x >= float32(w.Width()) {
		return true
	}

	for _, o := range w.objects {
		if vmath.InBox(w.Player.Position, o.Position, w.cat.Object(o.Type).Hitbox) {
			return true
		}
	}
	return false
}

// Fingerprint hashes the grid and obstacle layout; identical seeds yield identical fingerprints
func (w *World) Fingerprint() uint64 {
	h := xxh3.New()
	var buf [4]byte
	for _, row := range w.tiles {
		for _, t := range row {
			binary.LittleEndian.PutUint32(buf[:], uint32(t.Index()))
			h.Write(buf[:])
		}
	}
	for _, o := range w.objects {
		for _, v := range [...]uint32{
			uint32(o.Type.Index()),
			math.Float32bits(o.Position.X()),
			math.Float32bits(o.Position.Y()),
		} {
			binary.LittleEndian.PutUint32(buf[:], v)
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}
