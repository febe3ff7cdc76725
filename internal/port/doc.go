// Package port implements free-port selection for the notebook server.
//
// The starting point is derived from the invoking user's numeric uid:
//
//	basePort = (uid mod 63300) + 2048
//
// so repeated runs by the same user tend to land on the same port and
// different users rarely collide. From the base, a bounded window of
// 100 consecutive ports is probed in increasing order with a real
// net.Listen bind; the first port that binds is returned and the
// socket released immediately.
//
// Selection is inherently best-effort: the port can be taken between
// release and the server's own bind. That race is accepted because the
// notebook server performs its own fallback search.
package port
