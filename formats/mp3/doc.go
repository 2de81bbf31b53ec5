// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// It provides a simple interface for reading MP3 audio as PCM samples.
//
// # Supported Formats
//
// The decoder supports:
//   - MP3 (MPEG-1 Audio Layer 3)
//   - Various bitrates
//   - Stereo output (most MP3 files)
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0].
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (stereo)
//   - Sample rate: Depends on the MP3 file (typically 44.1kHz or 48kHz)
//
// To fold the stereo output down to mono, put an audio.DownmixWriter in
// front of the pipeline sink.
//
// # Performance
//
// The MP3 decoder:
//   - Streams data efficiently
//   - Minimal allocations during reading
//   - Suitable for real-time processing
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo (use audio.DownmixWriter to fold down)
//   - Requires reading entire frames for decoding
//
// # Use Cases
//
// Common applications:
//   - Playing MP3 files
//   - Converting MP3 to WAV
//   - Audio analysis
//   - Voice processing pipelines
//
// Example converting MP3 to WAV while measuring throughput:
//
//	mp3File, _ := os.Open("input.mp3")
//	source, _ := mp3.Decoder{}.Decode(mp3File)
//
//	wavFile, _ := os.Create("output.wav")
//	sink := wav.NewSink(wavFile, source.SampleRate(), source.Channels())
//	defer sink.Close()
//
//	avg, _ := audpipe.Meter(source, sink, 10*time.Second, 4096)
package mp3
