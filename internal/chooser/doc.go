// Package chooser implements a numbered terminal menu for picking one topic
// out of several. Entry 0 cancels; an empty answer takes the highlighted
// default when there is one.
package chooser
