package wire

import "github.com/supertrianguloid/komet/contour"

// ContourRequest is the decoded form of a contour call.
type ContourRequest struct {
	X, Y, Z []float64
	Levels  []float64
}

// DecodeContourRequest parses [x, y, z, levels].
func DecodeContourRequest(data []byte) (ContourRequest, error) {
	const op = "DecodeContourRequest"
	parts, err := splitRequest(op, data, 4)
	if err != nil {
		return ContourRequest{}, err
	}
	var arrays [4][]float64
	for i, name := range [4]string{"x", "y", "z", "levels"} {
		if arrays[i], err = floatArray(op, name, parts[i]); err != nil {
			return ContourRequest{}, err
		}
	}
	return ContourRequest{X: arrays[0], Y: arrays[1], Z: arrays[2], Levels: arrays[3]}, nil
}

// EncodeContourRequest is the client side of DecodeContourRequest.
func EncodeContourRequest(req ContourRequest) ([]byte, error) {
	return marshal("EncodeContourRequest", [4][]float64{req.X, req.Y, req.Z, req.Levels})
}

// contourResponse nests level → line → vertex → [x, y].
type contourResponse struct {
	Contours [][][][2]float64 `cbor:"contours"`
}

// EncodeContours writes one entry per level. Vertices carry x and y only.
func EncodeContours(contours []contour.Contour) ([]byte, error) {
	resp := contourResponse{Contours: make([][][][2]float64, len(contours))}
	for i, c := range contours {
		lines := make([][][2]float64, len(c.Lines))
		for j, l := range c.Lines {
			lines[j] = l.XY()
		}
		resp.Contours[i] = lines
	}
	return marshal("EncodeContours", resp)
}

// DecodeContours parses a contour response.
func DecodeContours(data []byte) ([][][][2]float64, error) {
	var resp contourResponse
	if err := decMode.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return resp.Contours, nil
}
