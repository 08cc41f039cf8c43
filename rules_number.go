package fieldcheck

// Numeric covers the built-in number types accepted by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min fails when the value is below min.
func Min[C any, N Numeric](key string, min N, valid, invalid string) Rule[C, N] {
	return Rule[C, N]{
		Key: key,
		Test: func(_ C, c Candidate[N]) bool {
			return c.Value >= min
		},
		ValidText:   textOrNil[C](valid),
		InvalidText: textOrNil[C](invalid),
	}
}

// Max fails when the value is above max.
func Max[C any, N Numeric](key string, max N, valid, invalid string) Rule[C, N] {
	return Rule[C, N]{
		Key: key,
		Test: func(_ C, c Candidate[N]) bool {
			return c.Value <= max
		},
		ValidText:   textOrNil[C](valid),
		InvalidText: textOrNil[C](invalid),
	}
}

// Between fails when the value is outside [min, max].
func Between[C any, N Numeric](key string, min, max N, valid, invalid string) Rule[C, N] {
	return Rule[C, N]{
		Key: key,
		Test: func(_ C, c Candidate[N]) bool {
			return c.Value >= min && c.Value <= max
		},
		ValidText:   textOrNil[C](valid),
		InvalidText: textOrNil[C](invalid),
	}
}
