package audio

import "math"

// genThunder synthesizes one thunder roll: a deep sub boom, a short crack
// at the front, a band-passed noise body and a long rumble tail that
// swells and fades. The seed varies length and texture between strikes.
func genThunder(seed uint64) []byte {
	dur := 1.8 + 0.6*(lcg(&seed)*0.5+0.5)
	swellRate := 1.0 + 0.8*(lcg(&seed)*0.5+0.5)
	swellPhase := lcg(&seed) * math.Pi

	n := int(dur * SampleRate)
	buf := makeBuf(n)

	lp1, lp2 := 0.0, 0.0 // two lowpasses for the bandpass body
	rumLP := 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		// Sub boom sliding from 90 Hz down to 16 Hz.
		subFreq := 90.0 * math.Pow(16.0/90.0, p*2.8)
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*5.2) * 0.74

		// The initial crack, over in the first dozen milliseconds.
		crack := 0.0
		if p < 0.012 {
			crack = lcg(&seed) * (1 - p/0.012) * 0.5
		}

		// Band-passed body (~120-2200 Hz).
		raw := lcg(&seed)
		lp1 = lp1*0.78 + raw*0.22
		lp2 = lp2*0.978 + raw*0.022
		body := (lp1 - lp2) * math.Exp(-p*3.4) * 0.42

		// Long rumble tail. The slow swell keeps the roll breathing
		// instead of decaying on a straight line.
		rumLP = rumLP*0.96 + lcg(&seed)*0.04
		swell := 0.72 + 0.28*math.Sin(2*math.Pi*swellRate*p*dur+swellPhase)
		rumble := rumLP * math.Exp(-p*1.6) * 0.34 * swell

		s := sub + crack + body + rumble
		putStereoF32(buf, i, softSat(s*0.9))
	}
	return buf
}
