package sysex

import (
	"fmt"
	"strconv"
	"strings"
)

// Wire format markers for System Exclusive frames.
const (
	Start      byte = 0xF0
	End        byte = 0xF7
	nonRT      byte = 0x7E
	inquirySub byte = 0x06
)

// InquiryRequest is the universal non-real-time device inquiry query,
// sent verbatim to any device regardless of variant.
const InquiryRequest = "F0 7E 7F 06 01 F7"

// BuildMessage concatenates a variant-specific header, a payload and the
// SysEx terminator into a spaced-hex frame. The payload is passed through
// untouched; the header is expected to already include the F0 start byte.
func BuildMessage(header, payload string) string {
	header = strings.TrimSpace(header)
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return header + " F7"
	}
	return header + " " + payload + " F7"
}

// FromHexString parses a spaced-hex frame ("F0 7E 00 ...") into raw bytes.
func FromHexString(s string) ([]byte, error) {
	fields := strings.Fields(s)
	data := make([]byte, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q: %w", f, err)
		}
		data = append(data, byte(v))
	}
	return data, nil
}

// ToHexString renders raw bytes as an uppercase spaced-hex frame.
func ToHexString(data []byte) string {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}

// DeviceInquiryResponse is the parsed form of a universal device inquiry
// reply. Valid is false for any frame that is not a well-formed inquiry
// response; such frames are expected (other devices share the wire) and
// must simply be ignored by callers.
type DeviceInquiryResponse struct {
	Valid        bool
	Manufacturer byte
	Family       int
	Member       int
	Revision     []int
}

// Minimum length of an inquiry response with a single-byte manufacturer id:
// F0 7E ch 06 02 mm ff ff dd dd ss ss ss ss F7
const minInquiryLen = 15

// ParseInquiryResponse validates raw SysEx bytes against the universal
// device inquiry response format and extracts the identification fields.
// The four revision bytes sit immediately before the terminator.
func ParseInquiryResponse(data []byte) DeviceInquiryResponse {
	if len(data) < minInquiryLen {
		return DeviceInquiryResponse{}
	}
	if data[0] != Start || data[1] != nonRT || data[3] != inquirySub || data[4] != 0x02 {
		return DeviceInquiryResponse{}
	}
	if data[len(data)-1] != End {
		return DeviceInquiryResponse{}
	}

	rev := make([]int, 4)
	for i := 0; i < 4; i++ {
		rev[i] = int(data[len(data)-5+i])
	}
	return DeviceInquiryResponse{
		Valid:        true,
		Manufacturer: data[5],
		Family:       int(data[6]) | int(data[7])<<7,
		Member:       int(data[8]) | int(data[9])<<7,
		Revision:     rev,
	}
}
