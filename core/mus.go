package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the types that get persisted. The shapes
// mirror what musgen would emit; fields are serialized in declaration order.

// IDMUS serializes IDs.
var IDMUS = idMUS{}

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	raw, n, err := varint.Uint64.Unmarshal(bs)
	return ID(raw), n, err
}

func (s idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// RectMUS serializes Rects.
var RectMUS = rectMUS{}

type rectMUS struct{}

func (s rectMUS) Marshal(v Rect, bs []byte) (n int) {
	n = varint.Float64.Marshal(v.X0, bs)
	n += varint.Float64.Marshal(v.Y0, bs[n:])
	n += varint.Float64.Marshal(v.X1, bs[n:])
	n += varint.Float64.Marshal(v.Y1, bs[n:])
	return n
}

func (s rectMUS) Unmarshal(bs []byte) (v Rect, n int, err error) {
	var n1 int
	v.X0, n, err = varint.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Y0, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.X1, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Y1, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s rectMUS) Size(v Rect) (size int) {
	size = varint.Float64.Size(v.X0)
	size += varint.Float64.Size(v.Y0)
	size += varint.Float64.Size(v.X1)
	size += varint.Float64.Size(v.Y1)
	return size
}

// TextBlockMUS serializes TextBlocks.
var TextBlockMUS = textBlockMUS{}

type textBlockMUS struct{}

func (s textBlockMUS) Marshal(v TextBlock, bs []byte) (n int) {
	n = ord.String.Marshal(v.Text, bs)
	n += varint.PositiveInt.Marshal(v.Page, bs[n:])
	n += varint.Float64.Marshal(v.FontSize, bs[n:])
	n += ord.String.Marshal(v.FontName, bs[n:])
	n += ord.Bool.Marshal(v.IsBold, bs[n:])
	n += ord.Bool.Marshal(v.IsItalic, bs[n:])
	n += RectMUS.Marshal(v.BBox, bs[n:])
	n += varint.Float64.Marshal(v.CenterX, bs[n:])
	n += varint.Float64.Marshal(v.CenterY, bs[n:])
	n += varint.Float64.Marshal(v.RelativeY, bs[n:])
	n += varint.PositiveInt.Marshal(v.WordCount, bs[n:])
	n += varint.PositiveInt.Marshal(v.TextLength, bs[n:])
	return n
}

func (s textBlockMUS) Unmarshal(bs []byte) (v TextBlock, n int, err error) {
	var n1 int
	v.Text, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Page, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FontSize, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FontName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IsBold, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IsItalic, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BBox, n1, err = RectMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CenterX, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CenterY, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RelativeY, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.WordCount, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TextLength, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	return
}

func (s textBlockMUS) Size(v TextBlock) (size int) {
	size = ord.String.Size(v.Text)
	size += varint.PositiveInt.Size(v.Page)
	size += varint.Float64.Size(v.FontSize)
	size += ord.String.Size(v.FontName)
	size += ord.Bool.Size(v.IsBold)
	size += ord.Bool.Size(v.IsItalic)
	size += RectMUS.Size(v.BBox)
	size += varint.Float64.Size(v.CenterX)
	size += varint.Float64.Size(v.CenterY)
	size += varint.Float64.Size(v.RelativeY)
	size += varint.PositiveInt.Size(v.WordCount)
	size += varint.PositiveInt.Size(v.TextLength)
	return size
}

// BlockSliceMUS serializes slices of TextBlocks as a length-prefixed sequence.
var BlockSliceMUS = blockSliceMUS{}

type blockSliceMUS struct{}

func (s blockSliceMUS) Marshal(v []TextBlock, bs []byte) (n int) {
	n = varint.PositiveInt.Marshal(len(v), bs)
	for i := range v {
		n += TextBlockMUS.Marshal(v[i], bs[n:])
	}
	return n
}

func (s blockSliceMUS) Unmarshal(bs []byte) (v []TextBlock, n int, err error) {
	length, n, err := varint.PositiveInt.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	var n1 int
	v = make([]TextBlock, 0, length)
	for i := 0; i < length; i++ {
		var block TextBlock
		block, n1, err = TextBlockMUS.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
		v = append(v, block)
	}
	return v, n, nil
}

func (s blockSliceMUS) Size(v []TextBlock) (size int) {
	size = varint.PositiveInt.Size(len(v))
	for i := range v {
		size += TextBlockMUS.Size(v[i])
	}
	return size
}
