// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// CSSDeclarations renders the custom property declarations for ts in
// publication order, one per line, without a selector.
func CSSDeclarations(ts TokenSet, indent string) string {
	var b strings.Builder
	for _, t := range AllTokens {
		c, ok := ts[t]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s%s: %s;\n", indent, t.CSSVar(), c)
	}
	return b.String()
}

// InlineStyle renders ts as a single-line style attribute value.
func InlineStyle(ts TokenSet) string {
	parts := make([]string, 0, len(ts))
	for _, t := range AllTokens {
		if c, ok := ts[t]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", t.CSSVar(), c))
		}
	}
	return strings.Join(parts, "; ")
}

// GenerateCSS generates a stylesheet with the token variables on :root and
// base element styles that consume them.
func GenerateCSS(ts TokenSet) string {
	return fmt.Sprintf(`:root {
%s}

/* Base element styles */
body {
  background-color: hsl(var(--background));
  color: hsl(var(--foreground));
}

a {
  color: hsl(var(--primary));
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

/* Button styles */
button, .btn {
  background-color: hsl(var(--primary));
  color: hsl(var(--primary-foreground));
  border: none;
  padding: 8px 16px;
  border-radius: 4px;
  cursor: pointer;
}

button:focus-visible, .btn:focus-visible {
  outline: 2px solid hsl(var(--ring));
  outline-offset: 2px;
}

.btn-secondary {
  background-color: hsl(var(--secondary));
  color: hsl(var(--secondary-foreground));
}

.btn-danger {
  background-color: hsl(var(--destructive));
  color: hsl(var(--destructive-foreground));
}

/* Card/surface styles */
.card, .surface {
  background-color: hsl(var(--card));
  color: hsl(var(--card-foreground));
  border: 1px solid hsl(var(--border));
  border-radius: 8px;
  padding: 16px;
}

.popover {
  background-color: hsl(var(--popover));
  color: hsl(var(--popover-foreground));
}

/* Input styles */
input, textarea, select {
  border: 1px solid hsl(var(--input));
  background-color: hsl(var(--card));
  color: hsl(var(--foreground));
  padding: 8px;
  border-radius: 4px;
}

input:focus, textarea:focus, select:focus {
  outline: none;
  border-color: hsl(var(--ring));
}

/* Muted text */
.text-muted, .muted {
  background-color: hsl(var(--muted));
  color: hsl(var(--muted-foreground));
}

.highlight {
  background-color: hsl(var(--accent));
  color: hsl(var(--accent-foreground));
}
`, CSSDeclarations(ts, "  "))
}
