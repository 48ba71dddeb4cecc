package ucd

import "sort"

type mirrorPair struct {
	r, m rune
}

// mirrors is sorted by r. Both directions of every pair are listed.
var mirrors = []mirrorPair{
	{0x0028, 0x0029}, {0x0029, 0x0028},
	{0x003C, 0x003E}, {0x003E, 0x003C},
	{0x005B, 0x005D}, {0x005D, 0x005B},
	{0x007B, 0x007D}, {0x007D, 0x007B},
	{0x00AB, 0x00BB}, {0x00BB, 0x00AB},
	{0x2039, 0x203A}, {0x203A, 0x2039},
	{0x2045, 0x2046}, {0x2046, 0x2045},
	{0x207D, 0x207E}, {0x207E, 0x207D},
	{0x208D, 0x208E}, {0x208E, 0x208D},
	{0x2208, 0x220B}, {0x2209, 0x220C}, {0x220A, 0x220D},
	{0x220B, 0x2208}, {0x220C, 0x2209}, {0x220D, 0x220A},
	{0x2264, 0x2265}, {0x2265, 0x2264},
	{0x2266, 0x2267}, {0x2267, 0x2266},
	{0x226A, 0x226B}, {0x226B, 0x226A},
	{0x2282, 0x2283}, {0x2283, 0x2282},
	{0x2286, 0x2287}, {0x2287, 0x2286},
	{0x2308, 0x2309}, {0x2309, 0x2308},
	{0x230A, 0x230B}, {0x230B, 0x230A},
	{0x2329, 0x232A}, {0x232A, 0x2329},
	{0x27E8, 0x27E9}, {0x27E9, 0x27E8},
	{0x3008, 0x3009}, {0x3009, 0x3008},
	{0x300A, 0x300B}, {0x300B, 0x300A},
	{0x300C, 0x300D}, {0x300D, 0x300C},
	{0x300E, 0x300F}, {0x300F, 0x300E},
	{0x3010, 0x3011}, {0x3011, 0x3010},
	{0xFF08, 0xFF09}, {0xFF09, 0xFF08},
	{0xFF3B, 0xFF3D}, {0xFF3D, 0xFF3B},
	{0xFF5B, 0xFF5D}, {0xFF5D, 0xFF5B},
}

// Mirror returns the Bidi_Mirroring_Glyph of r, if it has one.
func Mirror(r rune) (rune, bool) {
	i := sort.Search(len(mirrors), func(i int) bool { return mirrors[i].r >= r })
	if i < len(mirrors) && mirrors[i].r == r {
		return mirrors[i].m, true
	}
	return r, false
}
