// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and a WAV frame sink.
//
// Both directions are thin wrappers over github.com/go-audio/wav.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. Only PCM 16-bit input is supported.
// Passing an io.ReadSeeker avoids buffering the whole input in memory.
//
// # Writing WAV Files
//
// Sink terminates a pipeline, encoding every frame written to it:
//
//	file, _ := os.Create("output.wav")
//	sink := wav.NewSink(file, 44100, 2)
//	defer sink.Close()
//
//	sink.WriteFrame(frame)
//
// Close is mandatory: the encoder patches the RIFF sizes then. Because Sink
// is an audio.Writer it composes with the rest of the pipeline, most usefully
// under a profiler.ProfilingWriter that measures encode throughput.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: unsupported WAV file structure
//   - ErrSinkClosed: a frame was written after Close
package wav
