/*
 * kumu - Hex formatting helpers
 *
 * Copyright 2026, kumu contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package hexfmt renders bytes and small byte arrays the way the
// console's show/dump commands print pte and frame contents.
package hexfmt

import "strings"

var hexDigits = "0123456789ABCDEF"

// Byte renders a single byte as two hex digits.
func Byte(str *strings.Builder, b byte) {
	str.WriteByte(hexDigits[(b>>4)&0xf])
	str.WriteByte(hexDigits[b&0xf])
}

// Bytes renders a slice of bytes as space-separated hex pairs.
func Bytes(str *strings.Builder, space bool, data []byte) {
	for i, b := range data {
		if space && i > 0 {
			str.WriteByte(' ')
		}
		Byte(str, b)
	}
}

// FormatByte is a convenience wrapper returning a freshly built string.
func FormatByte(b byte) string {
	var s strings.Builder
	Byte(&s, b)
	return s.String()
}

// FormatBytes is a convenience wrapper returning a freshly built string.
func FormatBytes(data []byte) string {
	var s strings.Builder
	Bytes(&s, true, data)
	return s.String()
}
