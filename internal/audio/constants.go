package audio

// Capture constants
const (
	// Mic sample rate expected by the downlink service
	SampleRate = 16000

	// Frames per capture block (~64ms at 16kHz)
	BlockSize = 1024

	// Buffered blocks between the capture goroutine and consumers
	ChannelBuffer = 32
)
