package core

import (
	"fmt"
	"strconv"
	"strings"
)

// scriptKeys maps script letters to actions.
var scriptKeys = map[rune]Action{
	'L': ActionLeft,
	'R': ActionRight,
	'U': ActionUp,
	'D': ActionDown,
	'P': ActionPause,
}

// ParseScript expands an input script into one frame per tick.
//
// A script is a comma separated list of steps KEYS*N, where KEYS is any
// combination of L, R, U, D and P (or "-" for no input) held for N ticks.
// N defaults to 1. Example: "U*20,LU*5,-*10".
//
// At most maxTicks frames are produced; later steps are still checked
// for errors. maxTicks <= 0 means no limit.
func ParseScript(script string, maxTicks int) ([]InputFrame, error) {
	var frames []InputFrame
	for i, step := range strings.Split(script, ",") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}

		keys, count := step, 1
		if k, n, ok := strings.Cut(step, "*"); ok {
			c, err := strconv.Atoi(strings.TrimSpace(n))
			if err != nil || c < 1 {
				return nil, fmt.Errorf("script: step %d %q: bad tick count", i+1, step)
			}
			keys, count = strings.TrimSpace(k), c
		}

		frame := NewInputFrame()
		if keys != "-" {
			for _, r := range strings.ToUpper(keys) {
				a, ok := scriptKeys[r]
				if !ok {
					return nil, fmt.Errorf("script: step %d %q: unknown key %q", i+1, step, r)
				}
				frame.Set(a)
			}
		}
		if maxTicks > 0 {
			count = min(count, maxTicks-len(frames))
		}
		for n := 0; n < count; n++ {
			frames = append(frames, frame.Clone())
		}
	}
	return frames, nil
}
