package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/supertrianguloid/komet/contour"
)

type contourOutput struct {
	Level float64        `json:"level"`
	Lines [][][2]float64 `json:"lines"`
}

func toOutput(contours []contour.Contour) []contourOutput {
	out := make([]contourOutput, len(contours))
	for i, c := range contours {
		lines := make([][][2]float64, len(c.Lines))
		for j, l := range c.Lines {
			lines[j] = l.XY()
		}
		out[i] = contourOutput{Level: c.Level, Lines: lines}
	}
	return out
}

func writeContours(w io.Writer, format string, contours []contour.Contour) error {
	data := toOutput(contours)
	switch format {
	case "", "json":
		return json.NewEncoder(w).Encode(data)
	case "msgpack":
		encoder := msgpack.NewEncoder(w)
		encoder.SetCustomStructTag("json")
		return encoder.Encode(data)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
