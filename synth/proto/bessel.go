package proto

// Bessel returns the maximally-flat-delay prototype g-values for the given
// order. The values are published constants tabulated for orders 2 through 9;
// no closed form is used.
func Bessel(order int) ([]float64, error) {
	if order < MinOrder || order > MaxOrder {
		return nil, ErrOrderRange
	}

	g := make([]float64, order)
	copy(g, besselGValues[order])

	return g, nil
}

// besselGValues contains the Bessel (Thomson) prototype element values for
// orders 2-9, indexed by order.
//
// Source: Zverev, "Handbook of Filter Synthesis" (1967).
var besselGValues = [MaxOrder + 1][]float64{
	2: {0.5755, 2.1478},
	3: {0.3374, 0.9705, 2.2034},
	4: {0.2334, 0.6725, 1.0815, 2.2404},
	5: {0.1743, 0.5072, 0.8040, 1.1110, 2.2582},
	6: {0.1365, 0.4002, 0.6392, 0.8538, 1.1126, 2.2645},
	7: {0.1106, 0.3259, 0.5249, 0.7020, 0.8690, 1.1052, 2.2659},
	8: {0.0919, 0.2719, 0.4409, 0.5936, 0.7303, 0.8695, 1.0956, 2.2656},
	9: {0.0780, 0.2313, 0.3770, 0.5108, 0.6306, 0.7407, 0.8639, 1.0863, 2.2649},
}
