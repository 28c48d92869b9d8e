//go:build !xadrez_debug

package board

// assertInvariants is a no-op in release builds; see debugassert.go for
// the xadrez_debug build.
func (b *Board) assertInvariants() {}
