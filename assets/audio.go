package assets

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// ExplosionPCM synthesizes the enemy-explosion sound effect: a short burst
// of white noise with an exponential decay, returned as 16-bit little
// endian stereo PCM at the given sample rate. Generated once at startup,
// same reason as the sprites: no binary assets in the repository.
func ExplosionPCM(sampleRate int) []byte {
	const duration = 0.4 // seconds

	rng := rand.New(rand.NewSource(1))
	samples := int(float64(sampleRate) * duration)
	pcm := make([]byte, samples*4) // 2 channels x int16

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-8 * t)
		// Noise with a low rumble underneath
		v := (rng.Float64()*2 - 1) * 0.7
		v += 0.3 * math.Sin(2*math.Pi*60*t)
		v *= envelope

		sample := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(sample))
	}

	return pcm
}
