package emoji

import "github.com/gogpu/textlayout/internal/ucd"

// emojiPresentation holds code points with Emoji_Presentation=Yes: they
// display as emoji without a variation selector.
var emojiPresentation = ucd.Table{
	{Lo: 0x231A, Hi: 0x231B}, {Lo: 0x23E9, Hi: 0x23EC}, {Lo: 0x23F0, Hi: 0x23F0}, {Lo: 0x23F3, Hi: 0x23F3},
	{Lo: 0x25FD, Hi: 0x25FE}, {Lo: 0x2614, Hi: 0x2615}, {Lo: 0x2648, Hi: 0x2653}, {Lo: 0x267F, Hi: 0x267F},
	{Lo: 0x2693, Hi: 0x2693}, {Lo: 0x26A1, Hi: 0x26A1}, {Lo: 0x26AA, Hi: 0x26AB}, {Lo: 0x26BD, Hi: 0x26BE},
	{Lo: 0x26C4, Hi: 0x26C5}, {Lo: 0x26CE, Hi: 0x26CE}, {Lo: 0x26D4, Hi: 0x26D4}, {Lo: 0x26EA, Hi: 0x26EA},
	{Lo: 0x26F2, Hi: 0x26F3}, {Lo: 0x26F5, Hi: 0x26F5}, {Lo: 0x26FA, Hi: 0x26FA}, {Lo: 0x26FD, Hi: 0x26FD},
	{Lo: 0x2705, Hi: 0x2705}, {Lo: 0x270A, Hi: 0x270B}, {Lo: 0x2728, Hi: 0x2728}, {Lo: 0x274C, Hi: 0x274C},
	{Lo: 0x274E, Hi: 0x274E}, {Lo: 0x2753, Hi: 0x2755}, {Lo: 0x2757, Hi: 0x2757}, {Lo: 0x2795, Hi: 0x2797},
	{Lo: 0x27B0, Hi: 0x27B0}, {Lo: 0x27BF, Hi: 0x27BF}, {Lo: 0x2B1B, Hi: 0x2B1C}, {Lo: 0x2B50, Hi: 0x2B50},
	{Lo: 0x2B55, Hi: 0x2B55},
	{Lo: 0x1F004, Hi: 0x1F004}, // mahjong red dragon
	{Lo: 0x1F0CF, Hi: 0x1F0CF}, // joker
	{Lo: 0x1F18E, Hi: 0x1F18E}, {Lo: 0x1F191, Hi: 0x1F19A},
	{Lo: 0x1F1E6, Hi: 0x1F1FF}, // regional indicators
	{Lo: 0x1F201, Hi: 0x1F201}, {Lo: 0x1F21A, Hi: 0x1F21A}, {Lo: 0x1F22F, Hi: 0x1F22F},
	{Lo: 0x1F232, Hi: 0x1F236}, {Lo: 0x1F238, Hi: 0x1F23A}, {Lo: 0x1F250, Hi: 0x1F251},
	{Lo: 0x1F300, Hi: 0x1F64F}, // pictographs, emoticons
	{Lo: 0x1F680, Hi: 0x1F6FF}, // transport and map
	{Lo: 0x1F7E0, Hi: 0x1F7EB}, // geometric shapes extended
	{Lo: 0x1F900, Hi: 0x1FAFF}, // supplemental pictographs, extended-A
}

// textPresentation holds emoji that default to text presentation
// (Emoji=Yes, Emoji_Presentation=No).
var textPresentation = ucd.Table{
	{Lo: 0x00A9, Hi: 0x00A9}, {Lo: 0x00AE, Hi: 0x00AE}, {Lo: 0x203C, Hi: 0x203C}, {Lo: 0x2049, Hi: 0x2049},
	{Lo: 0x2122, Hi: 0x2122}, {Lo: 0x2139, Hi: 0x2139}, {Lo: 0x2194, Hi: 0x2199}, {Lo: 0x21A9, Hi: 0x21AA},
	{Lo: 0x2328, Hi: 0x2328}, {Lo: 0x23CF, Hi: 0x23CF}, {Lo: 0x23ED, Hi: 0x23EF}, {Lo: 0x23F1, Hi: 0x23F2},
	{Lo: 0x23F8, Hi: 0x23FA}, {Lo: 0x24C2, Hi: 0x24C2}, {Lo: 0x25AA, Hi: 0x25AB}, {Lo: 0x25B6, Hi: 0x25B6},
	{Lo: 0x25C0, Hi: 0x25C0}, {Lo: 0x25FB, Hi: 0x25FC},
	{Lo: 0x2600, Hi: 0x26FF}, // miscellaneous symbols
	{Lo: 0x2702, Hi: 0x27B0}, // dingbats
	{Lo: 0x2934, Hi: 0x2935}, {Lo: 0x2B05, Hi: 0x2B07}, {Lo: 0x3030, Hi: 0x3030}, {Lo: 0x303D, Hi: 0x303D},
	{Lo: 0x3297, Hi: 0x3297}, {Lo: 0x3299, Hi: 0x3299},
}

// modifierBase holds the characters a skin tone modifier can attach to.
var modifierBase = ucd.Table{
	{Lo: 0x261D, Hi: 0x261D}, {Lo: 0x26F9, Hi: 0x26F9}, {Lo: 0x270A, Hi: 0x270D},
	{Lo: 0x1F385, Hi: 0x1F385}, {Lo: 0x1F3C2, Hi: 0x1F3C4}, {Lo: 0x1F3C7, Hi: 0x1F3C7},
	{Lo: 0x1F3CA, Hi: 0x1F3CC}, {Lo: 0x1F442, Hi: 0x1F443}, {Lo: 0x1F446, Hi: 0x1F450},
	{Lo: 0x1F466, Hi: 0x1F478}, {Lo: 0x1F47C, Hi: 0x1F47C}, {Lo: 0x1F481, Hi: 0x1F483},
	{Lo: 0x1F485, Hi: 0x1F487}, {Lo: 0x1F48F, Hi: 0x1F48F}, {Lo: 0x1F491, Hi: 0x1F491},
	{Lo: 0x1F4AA, Hi: 0x1F4AA}, {Lo: 0x1F574, Hi: 0x1F575}, {Lo: 0x1F57A, Hi: 0x1F57A},
	{Lo: 0x1F590, Hi: 0x1F590}, {Lo: 0x1F595, Hi: 0x1F596}, {Lo: 0x1F645, Hi: 0x1F647},
	{Lo: 0x1F64B, Hi: 0x1F64F}, {Lo: 0x1F6A3, Hi: 0x1F6A3}, {Lo: 0x1F6B4, Hi: 0x1F6B6},
	{Lo: 0x1F6C0, Hi: 0x1F6C0}, {Lo: 0x1F6CC, Hi: 0x1F6CC}, {Lo: 0x1F90C, Hi: 0x1F90C},
	{Lo: 0x1F90F, Hi: 0x1F90F}, {Lo: 0x1F918, Hi: 0x1F91F}, {Lo: 0x1F926, Hi: 0x1F926},
	{Lo: 0x1F930, Hi: 0x1F939}, {Lo: 0x1F93C, Hi: 0x1F93E}, {Lo: 0x1F977, Hi: 0x1F977},
	{Lo: 0x1F9B5, Hi: 0x1F9B6}, {Lo: 0x1F9B8, Hi: 0x1F9B9}, {Lo: 0x1F9BB, Hi: 0x1F9BB},
	{Lo: 0x1F9CD, Hi: 0x1F9CF}, {Lo: 0x1F9D1, Hi: 0x1F9DD}, {Lo: 0x1FAC3, Hi: 0x1FAC5},
	{Lo: 0x1FAF0, Hi: 0x1FAF8},
}
