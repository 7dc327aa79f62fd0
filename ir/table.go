package ir

// FromTable builds a Table node. Each row must have one cell per
// header; short rows are padded with Null.
func FromTable(headers []string, rows [][]*Node) *Node {
	res := &Node{
		Type:    TableType,
		Headers: headers,
		Rows:    make([][]*Node, len(rows)),
	}
	for i, row := range rows {
		cells := make([]*Node, len(headers))
		for j := range headers {
			if j < len(row) {
				cells[j] = row[j]
			} else {
				cells[j] = Null()
			}
			cells[j].Parent = res
			cells[j].ParentIndex = i*len(headers) + j
		}
		res.Rows[i] = cells
	}
	return res
}

// Normalize rewrites every Table in the tree into the equivalent
// array of objects, one object per row keyed by header. The receiver
// is returned unchanged when no table is present.
func (y *Node) Normalize() *Node {
	switch y.Type {
	case TableType:
		elts := make([]*Node, len(y.Rows))
		for i, row := range y.Rows {
			kvs := make([]KeyVal, len(y.Headers))
			for j, h := range y.Headers {
				kvs[j] = KeyVal{Key: h, Val: row[j].Normalize()}
			}
			elts[i] = FromKeyVals(kvs)
		}
		arr := FromSlice(elts)
		arr.Parent = y.Parent
		arr.ParentIndex = y.ParentIndex
		arr.ParentField = y.ParentField
		return arr
	case ArrayType:
		for i, v := range y.Values {
			y.Values[i] = v.Normalize()
			y.Values[i].Parent = y
		}
		return y
	case ObjectType:
		for i, v := range y.Values {
			y.Values[i] = v.Normalize()
			y.Values[i].Parent = y
		}
		return y
	default:
		return y
	}
}
