// Package gadgets provides small terminal widgets for windows: typewriter
// text, a selectable option list and a single-line input prompt.
//
// Gadgets do not draw on their own. A window feeds them the frame input and
// elapsed time from OnUpdate and writes their Render output into the frame.
package gadgets
