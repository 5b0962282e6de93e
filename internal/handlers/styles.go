// SPDX-License-Identifier: MIT
package handlers

// Returns the preview page stylesheet. Every color comes from the token
// custom properties set on each section.
func GetDesignSystemCSS() string {
	return `
:root {
	--font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	--spacing-xs: 4px;
	--spacing-sm: 8px;
	--spacing-base: 16px;
	--spacing-md: 24px;
	--spacing-lg: 40px;
	--radius-sm: 4px;
	--radius-base: 6px;
}

* { box-sizing: border-box; }

body {
	font-family: var(--font-family);
	margin: 0;
	padding: 0;
	line-height: 1.5;
}

h1 { font-size: 28px; font-weight: 700; margin: 0; }
h2 { font-size: 20px; font-weight: 600; margin: 0; }
p { font-size: 16px; margin: 0; }
small { font-size: 12px; }

.sample {
	background: hsl(var(--background));
	color: hsl(var(--foreground));
	min-height: 60vh;
	padding: var(--spacing-lg);
	display: flex;
	flex-direction: column;
	gap: var(--spacing-md);
}

.sample-header {
	display: flex;
	justify-content: space-between;
	align-items: baseline;
	border-bottom: 1px solid hsl(var(--border));
	padding-bottom: var(--spacing-sm);
}

.sample-meta {
	color: hsl(var(--muted-foreground));
}

.card {
	background: hsl(var(--card));
	color: hsl(var(--card-foreground));
	border: 1px solid hsl(var(--border));
	border-radius: var(--radius-base);
	padding: var(--spacing-md);
	max-width: 720px;
}

.btn {
	display: inline-block;
	font-size: 14px;
	font-weight: 600;
	border: none;
	border-radius: var(--radius-base);
	padding: var(--spacing-sm) var(--spacing-base);
	background: hsl(var(--primary));
	color: hsl(var(--primary-foreground));
	outline: 2px solid hsl(var(--ring));
	outline-offset: 2px;
}

.btn-secondary {
	background: hsl(var(--secondary));
	color: hsl(var(--secondary-foreground));
	outline: none;
}

.btn-danger {
	background: hsl(var(--destructive));
	color: hsl(var(--destructive-foreground));
	outline: none;
}

.swatches {
	display: grid;
	grid-template-columns: repeat(auto-fill, minmax(140px, 1fr));
	gap: var(--spacing-sm);
}

.swatch {
	border: 1px solid hsl(var(--input));
	border-radius: var(--radius-sm);
	padding: var(--spacing-sm);
	font-size: 12px;
	min-height: 56px;
}

.muted {
	background: hsl(var(--muted));
	color: hsl(var(--muted-foreground));
	padding: var(--spacing-sm);
	border-radius: var(--radius-sm);
}
`
}
