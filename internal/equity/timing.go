package equity

import "time"

func (j *judge) startLookup() time.Time {
	if !j.opts.TimeLookups {
		return time.Time{}
	}
	return j.opts.Clock.Now("equity", "lookup")
}

func (j *judge) stopLookup(start time.Time) {
	if !j.opts.TimeLookups {
		return
	}
	j.result.LookupTime += j.opts.Clock.Since(start, "equity", "lookup")
}
