package neighbors

import "fmt"

// Statistics tallies how often the countdown checked, updated and audited a
// neighbor list. Grounded directly on the original statistics.rs Display
// implementation: raw counts followed by four ratios.
type Statistics struct {
	Steps        uint64
	UpdateChecks uint64
	Updates      uint64
	SanityChecks uint64
}

// Report renders the statistics as a fixed-column table: a left-aligned
// label followed by a right-aligned ten-column numeric field, four raw
// counts followed by four ratios printed to two decimal places. Ratios with
// a zero denominator come out as the non-finite values +Inf/NaN; that is
// diagnostic output, not data.
func (s Statistics) Report() string {
	stepsPerUpdateCheck := float64(s.Steps) / float64(s.UpdateChecks)
	stepsPerUpdate := float64(s.Steps) / float64(s.Updates)
	stepsPerSanityCheck := float64(s.Steps) / float64(s.SanityChecks)
	updateChecksPerUpdate := float64(s.UpdateChecks) / float64(s.Updates)

	return fmt.Sprintf(
		"Neighborlist statistics:\n"+
			"Steps                          %10d\n"+
			"Update checks                  %10d\n"+
			"Updates                        %10d\n"+
			"Sanity checks                  %10d\n"+
			"Steps per update check         %10.2f\n"+
			"Steps per update               %10.2f\n"+
			"Steps per sanity check         %10.2f\n"+
			"Update checks per update       %10.2f\n",
		s.Steps, s.UpdateChecks, s.Updates, s.SanityChecks,
		stepsPerUpdateCheck, stepsPerUpdate, stepsPerSanityCheck, updateChecksPerUpdate,
	)
}

// String satisfies fmt.Stringer, matching the Stringer conventions the
// teacher packages use throughout (Particle, Star, Ring).
func (s Statistics) String() string {
	return s.Report()
}
