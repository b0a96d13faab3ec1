package smooth

const (
	// DefaultAlpha weights the previous sample in the EMA:
	// smoothed = prev*alpha + raw*(1-alpha).
	DefaultAlpha = 0.3

	// DefaultWindow is the sliding-window length averaged for the
	// downstream value.
	DefaultWindow = 3
)
