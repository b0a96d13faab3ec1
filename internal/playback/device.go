package playback

import (
	"github.com/gordonklaus/portaudio"
)

// deviceSink writes samples to the default output device in fixed
// blocks, zero-padding the tail of each chunk.
type deviceSink struct {
	stream *portaudio.Stream
	buf    []float32
}

// NewDeviceSink opens the default output device for mono playback.
func NewDeviceSink(sampleRate int) (Sink, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	buf := make([]float32, SinkBlockSize)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), SinkBlockSize, buf)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, err
	}
	return &deviceSink{stream: stream, buf: buf}, nil
}

func (d *deviceSink) Play(samples []float32) error {
	for off := 0; off < len(samples); off += SinkBlockSize {
		end := off + SinkBlockSize
		if end > len(samples) {
			end = len(samples)
		}
		n := copy(d.buf, samples[off:end])
		for i := n; i < SinkBlockSize; i++ {
			d.buf[i] = 0
		}
		if err := d.stream.Write(); err != nil {
			return err
		}
	}
	return nil
}

func (d *deviceSink) Close() error {
	_ = d.stream.Stop()
	err := d.stream.Close()
	_ = portaudio.Terminate()
	return err
}
