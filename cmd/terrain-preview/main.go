package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/skii/catalog"
	"github.com/lixenwraith/skii/loader"
	"github.com/lixenwraith/skii/vmath"
	"github.com/lixenwraith/skii/world"
)

func main() {
	cat, err := loader.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load descriptors: %v\n", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== SKII TERRAIN PREVIEW ===")

		w := getInt(reader, "Width (default 7): ", 7)
		h := getInt(reader, "Height (default 16): ", 16)
		rows := getInt(reader, "Rows to scroll (default 64): ", 64)
		seed := getString(reader, "Seed (default time based): ", "")

		if w < 1 || h < 1 || rows < 0 {
			fmt.Println("Dimensions must be positive")
			continue
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		wld := world.New(cat, vmath.NewFastRand(vmath.SeedFromString(seed)))
		wld.Reset(w, h)
		for scrolled := 0; scrolled < rows; {
			n := min(h, rows-scrolled)
			wld.Scroll(n)
			scrolled += n
		}
		dur := time.Since(startT)

		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Distance: %.0f rows, objects in view: %d\n", wld.RealY, len(wld.Objects()))
		fmt.Printf("Fingerprint: %016x\n", wld.Fingerprint())

		draw(wld)
		stats(wld)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// draw prints the course top to bottom, downhill last, objects over their anchor cell
func draw(wld *world.World) {
	cat := wld.Catalog()
	objects := make(map[[2]int]catalog.ObjectID)
	for _, o := range wld.Objects() {
		objects[[2]int{int(o.Position.X()), int(o.Position.Y())}] = o.Type
	}

	var sb strings.Builder
	for y, row := range wld.Rows() {
		for x, id := range row {
			if o, ok := objects[[2]int{x, y}]; ok {
				sb.WriteRune(cat.Object(o).Visual.Glyph)
				continue
			}
			sb.WriteRune(cat.Tile(id).Visual.Glyph)
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

// stats prints observed tile frequencies against the relative distribution weights
func stats(wld *world.World) {
	cat := wld.Catalog()
	counts := make([]int, cat.TileCount())
	total := 0
	for _, row := range wld.Rows() {
		for _, id := range row {
			counts[id.Index()]++
			total++
		}
	}

	var weights float32
	for i := range counts {
		weights += cat.Tile(cat.MustTile(i)).Distribution
	}

	fmt.Println("\nTile          seen    weight")
	for i, n := range counts {
		t := cat.Tile(cat.MustTile(i))
		fmt.Printf("%-12s %5.1f%%  %5.1f%%\n",
			t.Visual.Name,
			100*float64(n)/float64(total),
			100*t.Distribution/weights)
	}
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getString(r *bufio.Reader, prompt string, def string) string {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}
