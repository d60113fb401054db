/*
 * kumu - Virtual address decoder
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

package mmu

// DecodeAddress splits an 8-bit virtual address into its three 2-bit
// translation indices. The two low bits (the intra-page offset) are
// not returned: this simulator only models translation, not the byte
// within a page.
func DecodeAddress(va uint8) (pdIdx, pmdIdx, ptIdx uint8) {
	pdIdx = (va >> 6) & 0x3
	pmdIdx = (va >> 4) & 0x3
	ptIdx = (va >> 2) & 0x3
	return pdIdx, pmdIdx, ptIdx
}
