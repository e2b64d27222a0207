/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package xio

import "strings"

const macHexDigits = 12

// FormatMACAddress normalizes a MAC address to the dotted lowercase form the
// XiO Cloud claim endpoint expects ("xx.xx.xx.xx.xx.xx"). Colon, dash, dot
// and space separated inputs are accepted, as are bare 12-digit strings.
func FormatMACAddress(mac string) (string, error) {
	clean := strings.NewReplacer(":", "", "-", "", ".", "", " ", "").Replace(mac)
	clean = strings.ToLower(clean)

	if len(clean) != macHexDigits {
		return "", invalidArgument("invalid MAC address length: %q", mac)
	}

	for _, c := range clean {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", invalidArgument("invalid MAC address characters: %q", mac)
		}
	}

	var b strings.Builder

	for i := 0; i < macHexDigits; i += 2 {
		if i > 0 {
			b.WriteByte('.')
		}

		b.WriteString(clean[i : i+2])
	}

	return b.String(), nil
}
