package scan

// Format is a supported barcode symbology.
type Format string

const (
	EAN13   Format = "ean13"
	EAN8    Format = "ean8"
	UPCA    Format = "upc_a"
	UPCE    Format = "upc_e"
	Code128 Format = "code128"
)

// Formats lists the symbologies the scanner accepts.
var Formats = []Format{EAN13, EAN8, UPCA, UPCE, Code128}

// Detect classifies data. Numeric data of a retail length must carry a
// valid check digit; other printable ASCII up to 80 characters is Code 128.
func Detect(data string) (Format, error) {
	if data == "" {
		return "", ErrUnsupported
	}
	if digits, ok := numeric(data); ok {
		switch len(digits) {
		case 13:
			return checked(EAN13, gtinValid(digits))
		case 12:
			return checked(UPCA, gtinValid(digits))
		case 8:
			if gtinValid(digits) {
				return EAN8, nil
			}
			if upceValid(digits) {
				return UPCE, nil
			}
			return "", ErrChecksum
		}
	}
	if len(data) > 80 {
		return "", ErrUnsupported
	}
	for i := 0; i < len(data); i++ {
		if data[i] < 0x20 || data[i] > 0x7e {
			return "", ErrUnsupported
		}
	}
	return Code128, nil
}

func checked(f Format, ok bool) (Format, error) {
	if !ok {
		return "", ErrChecksum
	}
	return f, nil
}

func numeric(s string) ([]int, bool) {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
		out[i] = int(s[i] - '0')
	}
	return out, true
}

// gtinValid checks the mod-10 digit shared by EAN-13, EAN-8 and UPC-A:
// weights alternate 3,1 starting from the digit left of the check digit.
func gtinValid(d []int) bool {
	n := len(d)
	sum := 0
	for i := n - 2; i >= 0; i-- {
		w := 1
		if (n-2-i)%2 == 0 {
			w = 3
		}
		sum += d[i] * w
	}
	return (10-sum%10)%10 == d[n-1]
}

// upceValid expands a zero-suppressed UPC-E code to UPC-A and checks it.
func upceValid(d []int) bool {
	if d[0] > 1 {
		return false
	}
	m := d[1:7]
	var body []int
	switch last := m[5]; {
	case last <= 2:
		body = []int{m[0], m[1], last, 0, 0, 0, 0, m[2], m[3], m[4]}
	case last == 3:
		body = []int{m[0], m[1], m[2], 0, 0, 0, 0, 0, m[3], m[4]}
	case last == 4:
		body = []int{m[0], m[1], m[2], m[3], 0, 0, 0, 0, 0, m[4]}
	default:
		body = []int{m[0], m[1], m[2], m[3], m[4], 0, 0, 0, 0, last}
	}
	upca := append([]int{d[0]}, body...)
	upca = append(upca, d[7])
	return gtinValid(upca)
}
