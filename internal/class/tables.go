package class

// SingleByteRoster lists the 18 single-byte candidate tables in the exact
// order original_source/src/lib.rs's EncodingDetector::new() constructs
// its candidate array (Windows-1252 first, so it doubles as the
// Windows-1252 hard-default fallback index).
var SingleByteRoster = []*Table{
	Windows1252,
	Windows1251,
	Windows1250,
	ISO88592,
	Windows1256,
	Windows1254,
	Windows874,
	Windows1255,
	Windows1253,
	ISO88597,
	Windows1257,
	KOI8U,
	IBM866,
	ISO88596,
	Windows1258,
	ISO88594,
	ISO88595,
	ISO88598,
}

// IndexOf returns the roster index of the table with the given canonical
// name, or -1 if not found. Test-only helper.
func IndexOf(name string) int {
	for i, t := range SingleByteRoster {
		if t.Name == name {
			return i
		}
	}
	return -1
}
