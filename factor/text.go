// SPDX-License-Identifier: MIT
package factor

import (
	"fmt"
	"strings"
)

// String renders f in the textual form "(" + vars + " <" + values + " >)",
// matching TFactor<T>::operator<< in factor.h.
func (f Factor) String() string {
	var b strings.Builder
	b.WriteString("(")
	for k, v := range f.vars.Vars() {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteString(" <")
	for _, x := range f.values {
		b.WriteString(fmt.Sprintf(" %g", x))
	}
	b.WriteString(" >)")

	return b.String()
}
