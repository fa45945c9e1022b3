// SPDX-License-Identifier: MIT

package jenks

// Classes describes every class of r over data.
// data must be the slice Solve was called with.
//
// Errors: ErrEmptyInput, ErrBadBreaks (also when Breaks is nil).
func (r Result) Classes(data []float64) ([]Class, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateBreaks(len(data), r.Breaks); err != nil {
		return nil, err
	}

	out := make([]Class, len(r.Breaks))
	start := 0
	for c, end := range r.Breaks {
		block := data[start:end]
		var sum float64
		for _, x := range block {
			sum += x
		}
		out[c] = Class{
			Start: start,
			End:   end,
			Count: end - start,
			Min:   block[0],
			Max:   block[len(block)-1],
			Mean:  sum / float64(len(block)),
			SSD:   SSD(block),
		}
		start = end
	}

	return out, nil
}

// Values returns the k+1 class bounds over sorted data:
// [min, upper(class 1), …, upper(class k)], the last one being max.
// This is the layout choropleth tools usually expect.
func (r Result) Values(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateBreaks(len(data), r.Breaks); err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(r.Breaks)+1)
	out = append(out, data[0])
	for _, end := range r.Breaks {
		out = append(out, data[end-1])
	}

	return out, nil
}

// GVF returns the goodness of variance fit 1 − Cost/SSD(data).
// It is 1 for a perfect fit and when data has no spread at all.
// When r carries breaks they must partition data; a Cost-only Result
// (TwoColumns) is taken as computed over data.
func (r Result) GVF(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	if r.Breaks != nil {
		if err := validateBreaks(len(data), r.Breaks); err != nil {
			return 0, err
		}
	}
	sdam := SSD(data)
	if sdam == 0 {
		return 1, nil
	}

	return 1 - r.Cost/sdam, nil
}
