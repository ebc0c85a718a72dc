// Package gallery owns the selection state of the effect gallery.
//
// A [Controller] keeps the single PlayingSelector and the elapsed-time
// table, and holds one [Unit] per registered effect in registration order.
// Each unit derives its own Playing/Paused status by comparing its effect
// id with the selector, so exactly one unit animates at a time.
//
// Hosts translate their input into controller calls:
//
//	pointer enters unit -> Hover(id)
//	pointer leaves unit -> Leave(id)   (no-op, selection persists)
//	unit clicked        -> Click(id)
//	play/pause button   -> Toggle()    (selected unit only)
//
// and pump the frame scheduler they passed to [New] once per refresh.
// Pixel hosts can place units with [NewLayout] and let a [Pointer] derive
// enter and leave from raw cursor positions.
package gallery
