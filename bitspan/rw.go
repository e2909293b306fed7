package bitspan

// ReadAs interprets the bits of s as the low Len() bits of a T. Bits of T
// above Len() are zero; no sign extension is performed. A span longer than T
// fails with a BitWidthError. An empty span reads as zero.
func ReadAs[T Binary, S Bits[S]](s S) (T, error) {
	return readAs[T](s.ReadOnly().w)
}

// ReadAsN reads the first numBits bits of s as a T.
func ReadAsN[T Binary, S Bits[S]](s S, numBits int) (T, error) {
	prefix, err := s.SliceN(0, numBits)
	if err != nil {
		return 0, err
	}
	return ReadAs[T](prefix)
}

// Write stores the low Len() bits of v into s. Bits of the buffer outside s
// are left unchanged. A span longer than T fails with a BitWidthError.
func Write[T Binary](s Span, v T) error {
	return write(s.w, v)
}

// WriteN stores the low numBits bits of v into the first numBits bits of s.
func WriteN[T Binary](s Span, v T, numBits int) error {
	prefix, err := s.SliceN(0, numBits)
	if err != nil {
		return err
	}
	return Write(prefix, v)
}

func readAs[T Binary](w window) (T, error) {
	if w.length == 0 {
		return 0, nil
	}
	if err := CheckWidth(w.length, 0, Width[T]()); err != nil {
		return 0, err
	}

	m := Map(w.offset, w.length, len(w.data))
	d := w.data

	if m.NumBytes == 1 {
		return T((d[0] & m.First.Mask & m.Last.Mask) >> m.Last.Padding), nil
	}

	remaining := w.length - m.First.NumBits()
	v := T(d[0]&m.First.Mask) << remaining

	last := m.LastByteIndex()
	for i := 1; i < last; i++ {
		remaining -= 8
		v |= T(d[i]) << remaining
	}

	v |= T((d[last] & m.Last.Mask) >> m.Last.Padding)
	return v, nil
}

func write[T Binary](w window, v T) error {
	if w.length == 0 {
		return nil
	}
	if err := CheckWidth(w.length, 0, Width[T]()); err != nil {
		return err
	}

	m := Map(w.offset, w.length, len(w.data))
	d := w.data

	if m.NumBytes == 1 {
		mask := m.First.Mask & m.Last.Mask
		d[0] = (byte(v)<<m.Last.Padding)&mask | d[0]&^mask
		return nil
	}

	remaining := w.length - m.First.NumBits()
	d[0] = d[0]&^m.First.Mask | byte(v>>remaining)&m.First.Mask

	last := m.LastByteIndex()
	for i := 1; i < last; i++ {
		remaining -= 8
		d[i] = byte(v >> remaining)
	}

	d[last] = d[last]&^m.Last.Mask | byte(v<<m.Last.Padding)&m.Last.Mask
	return nil
}
