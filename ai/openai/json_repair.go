// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import "strings"

// cleanModelJSON normalizes a chat response into a parseable JSON document:
// strips markdown code fences, then repairs the quoting defects small local
// models commonly produce.
func cleanModelJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return repairJSON(strings.TrimSpace(s))
}

// repairJSON reinserts opening quotes on object keys that lost them, the one
// malformation seen repeatedly in local-model JSON output:
//
//	{ type": "x" }  ->  { "type": "x" }
//
// Anything it does not recognize is copied through untouched.
func repairJSON(s string) string {
	runes := []rune(s)
	var out strings.Builder
	out.Grow(len(s) + 16)

	i := 0
	for i < len(runes) {
		r := runes[i]
		out.WriteRune(r)
		i++
		if r != '{' && r != ',' {
			continue
		}

		// A key may only follow an object opener or a separator. Copy the
		// whitespace, then look for a bare identifier closed by `":`.
		for i < len(runes) && (runes[i] == ' ' || runes[i] == '\n' || runes[i] == '\t') {
			out.WriteRune(runes[i])
			i++
		}
		if i >= len(runes) || runes[i] == '"' || !isLetter(runes[i]) {
			continue
		}

		start := i
		for i < len(runes) && (isLetter(runes[i]) || runes[i] == '_' || runes[i] == ' ') {
			i++
		}

		if i+1 < len(runes) && runes[i] == '"' && runes[i+1] == ':' {
			out.WriteRune('"')
			out.WriteString(strings.Trim(string(runes[start:i]), " "))
			// The closing quote already sits at runes[i].
		} else {
			out.WriteString(string(runes[start:i]))
		}
	}

	return out.String()
}
