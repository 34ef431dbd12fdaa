// Package catalog holds the static table of tradable cases: the CSFloat
// def_index used to query listings and the official release date of each
// case. The table is ordered newest release first.
package catalog

import (
	"sort"
	"time"
)

// Case is one entry in the preset case table.
type Case struct {
	Name        string
	DefIndex    int
	ReleaseDate time.Time
}

const releaseDateLayout = "January 2, 2006"

func mustDate(s string) time.Time {
	t, err := time.Parse(releaseDateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

var cases = []Case{
	{"Fever Case", 7007, mustDate("March 31, 2025")},
	{"Gallery Case", 7003, mustDate("October 2, 2024")},
	{"Kilowatt Case", 4904, mustDate("February 6, 2024")},
	{"Revolution Case", 4880, mustDate("February 9, 2023")},
	{"Recoil Case", 4846, mustDate("July 1, 2022")},
	{"Dreams & Nightmares Case", 4818, mustDate("January 20, 2022")},
	{"Operation Riptide Case", 4790, mustDate("September 21, 2021")},
	{"Snakebite Case", 4747, mustDate("May 3, 2021")},
	{"Operation Broken Fang Case", 4717, mustDate("December 3, 2020")},
	{"Fracture Case", 4698, mustDate("August 6, 2020")},
	{"Prisma 2 Case", 4695, mustDate("March 31, 2020")},
	{"Shattered Web Case", 4620, mustDate("November 18, 2019")},
	{"CS20 Case", 4669, mustDate("October 18, 2019")},
	{"Prisma Case", 4598, mustDate("March 13, 2019")},
	{"Danger Zone Case", 4548, mustDate("December 6, 2018")},
	{"Horizon Case", 4482, mustDate("August 2, 2018")},
	{"Clutch Case", 4471, mustDate("February 15, 2018")},
	{"Spectrum 2 Case", 4403, mustDate("September 14, 2017")},
	{"Operation Hydra Case", 4352, mustDate("May 23, 2017")},
	{"Spectrum Case", 4351, mustDate("March 15, 2017")},
	{"Glove Case", 4288, mustDate("November 28, 2016")},
	{"Gamma 2 Case", 4281, mustDate("August 18, 2016")},
	{"Gamma Case", 4236, mustDate("June 15, 2016")},
	{"Chroma 3 Case", 4233, mustDate("April 27, 2016")},
	{"Operation Wildfire Case", 4187, mustDate("February 17, 2016")},
	{"Revolver Case", 4186, mustDate("December 8, 2015")},
	{"Shadow Case", 4138, mustDate("September 17, 2015")},
	{"Falchion Case", 4091, mustDate("May 26, 2015")},
	{"Chroma 2 Case", 4089, mustDate("April 15, 2015")},
	{"Chroma Case", 4061, mustDate("January 8, 2015")},
	{"Operation Vanguard Case", 4029, mustDate("November 11, 2014")},
	{"Operation Breakout Case", 4018, mustDate("July 1, 2014")},
	{"Huntsman Case", 4017, mustDate("May 1, 2014")},
	{"Operation Phoenix Case", 4011, mustDate("February 20, 2014")},
	{"CSGO Weapon Case 3", 4010, mustDate("February 12, 2014")},
	{"Winter Offensive Case", 4009, mustDate("December 18, 2013")},
	{"CSGO Weapon Case 2", 4004, mustDate("November 8, 2013")},
	{"Operation Bravo Case", 4003, mustDate("September 19, 2013")},
	{"CSGO Weapon Case", 4001, mustDate("August 14, 2013")},
}

var defIndexByName = make(map[string]int, len(cases))

func init() {
	sort.SliceStable(cases, func(i, j int) bool {
		return cases[i].ReleaseDate.After(cases[j].ReleaseDate)
	})
	for _, c := range cases {
		defIndexByName[c.Name] = c.DefIndex
	}
}

// Cases returns the full catalog, newest release first.
func Cases() []Case {
	out := make([]Case, len(cases))
	copy(out, cases)
	return out
}

// Names returns all case names, newest release first.
func Names() []string {
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}
	return names
}

// DefIndex returns the CSFloat def_index for a case name.
func DefIndex(name string) (int, bool) {
	idx, ok := defIndexByName[name]
	return idx, ok
}
