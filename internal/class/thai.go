package class

// Windows-874: Thai, caseless, with a real gap band (0xDB-0xDE,
// 0xFC-0xFF are unassigned in the actual codepage).

func classifyWindows874(b byte) Class {
	if c, ok := classifyASCIIPrefix(b); ok {
		return c
	}
	switch {
	case b == 0x80:
		return NonASCIISymbol // Euro sign
	case b < 0x85:
		return Invalid
	case b == 0x85:
		return NonASCIISymbol // ellipsis
	case b < 0x91:
		return Invalid
	case b <= 0x97:
		return NonASCIISymbol // smart quotes / dashes / bullet
	case b < 0xA0:
		return Invalid
	case b == 0xA0:
		return Space
	case b <= 0xDA:
		return ThaiLetter
	case b <= 0xDE:
		return Invalid
	case b == 0xDF:
		return NonASCIISymbol // Thai currency symbol baht
	case b <= 0xFB:
		return ThaiLetter
	default:
		return Invalid
	}
}

var Windows874 = newTable("windows-874", classifyWindows874)
