package gossdb

// Queue commands.

// QSize returns the number of items in the queue.
func (c *Client) QSize(name string) (int64, error) {
	return replyInt(c.Do("qsize", name))
}

// QClear removes the whole queue.
func (c *Client) QClear(name string) (int64, error) {
	return replyInt(c.Do("qclear", name))
}

// QPush appends items to the back of the queue.
func (c *Client) QPush(name string, items ...interface{}) (int64, error) {
	return replyInt(c.Do("qpush", append([]interface{}{name}, items...)...))
}

// QPushFront prepends items to the front of the queue.
func (c *Client) QPushFront(name string, items ...interface{}) (int64, error) {
	return replyInt(c.Do("qpush_front", append([]interface{}{name}, items...)...))
}

// QPushBack appends items to the back of the queue.
func (c *Client) QPushBack(name string, items ...interface{}) (int64, error) {
	return replyInt(c.Do("qpush_back", append([]interface{}{name}, items...)...))
}

// QPop removes and returns up to size items from the front.
func (c *Client) QPop(name string, size int64) ([][]byte, error) {
	return replyList(c.Do("qpop", name, size))
}

// QPopFront removes and returns up to size items from the front.
func (c *Client) QPopFront(name string, size int64) ([][]byte, error) {
	return replyList(c.Do("qpop_front", name, size))
}

// QPopBack removes and returns up to size items from the back.
func (c *Client) QPopBack(name string, size int64) ([][]byte, error) {
	return replyList(c.Do("qpop_back", name, size))
}

// QFront returns the first item without removing it.
func (c *Client) QFront(name string) ([]byte, error) {
	return replyBytes(c.Do("qfront", name))
}

// QBack returns the last item without removing it.
func (c *Client) QBack(name string) ([]byte, error) {
	return replyBytes(c.Do("qback", name))
}

// QGet returns the item at index.
func (c *Client) QGet(name string, index int64) ([]byte, error) {
	return replyBytes(c.Do("qget", name, index))
}

// QSet overwrites the item at index.
func (c *Client) QSet(name string, index int64, value interface{}) error {
	_, err := c.Do("qset", name, index, value)
	return err
}

// QRange returns limit items starting at offset.
func (c *Client) QRange(name string, offset, limit int64) ([][]byte, error) {
	return replyList(c.Do("qrange", name, offset, limit))
}

// QSlice returns the items with index in [begin, end].
func (c *Client) QSlice(name string, begin, end int64) ([][]byte, error) {
	return replyList(c.Do("qslice", name, begin, end))
}

// QTrimFront removes size items from the front.
func (c *Client) QTrimFront(name string, size int64) (int64, error) {
	return replyInt(c.Do("qtrim_front", name, size))
}

// QTrimBack removes size items from the back.
func (c *Client) QTrimBack(name string, size int64) (int64, error) {
	return replyInt(c.Do("qtrim_back", name, size))
}

// QList lists queue names in (nameStart, nameEnd], at most limit.
func (c *Client) QList(nameStart, nameEnd string, limit int64) ([][]byte, error) {
	return replyList(c.Do("qlist", nameStart, nameEnd, limit))
}

// QRList lists queue names in reverse order.
func (c *Client) QRList(nameStart, nameEnd string, limit int64) ([][]byte, error) {
	return replyList(c.Do("qrlist", nameStart, nameEnd, limit))
}
