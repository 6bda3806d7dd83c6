package gossdb

import "gossdb/proto"

// Hashmap commands.

// HSet stores a value under a field of hash name.
func (c *Client) HSet(name, key string, value interface{}) (int64, error) {
	return replyInt(c.Do("hset", name, key, value))
}

// HGet returns the value of a field, nil when absent.
func (c *Client) HGet(name, key string) ([]byte, error) {
	return replyBytes(c.Do("hget", name, key))
}

// HDel removes a field.
func (c *Client) HDel(name, key string) (int64, error) {
	return replyInt(c.Do("hdel", name, key))
}

// HIncr increments the integer value of a field by delta.
func (c *Client) HIncr(name, key string, delta int64) (int64, error) {
	return replyInt(c.Do("hincr", name, key, delta))
}

// HDecr decrements the integer value of a field by delta.
func (c *Client) HDecr(name, key string, delta int64) (int64, error) {
	return replyInt(c.Do("hdecr", name, key, delta))
}

// HExists reports whether the field is present.
func (c *Client) HExists(name, key string) (int64, error) {
	return replyInt(c.Do("hexists", name, key))
}

// HSize returns the number of fields in the hash.
func (c *Client) HSize(name string) (int64, error) {
	return replyInt(c.Do("hsize", name))
}

// HClear removes the whole hash.
func (c *Client) HClear(name string) (int64, error) {
	return replyInt(c.Do("hclear", name))
}

// HGetAll returns every field-value pair of the hash in server order.
func (c *Client) HGetAll(name string) ([]proto.Pair, error) {
	return replyPairs(c.Do("hgetall", name))
}

// HKeys lists field names in (keyStart, keyEnd], at most limit.
func (c *Client) HKeys(name, keyStart, keyEnd string, limit int64) ([][]byte, error) {
	return replyList(c.Do("hkeys", name, keyStart, keyEnd, limit))
}

// HList lists hash names in (nameStart, nameEnd], at most limit.
func (c *Client) HList(nameStart, nameEnd string, limit int64) ([][]byte, error) {
	return replyList(c.Do("hlist", nameStart, nameEnd, limit))
}

// HRList lists hash names in reverse order.
func (c *Client) HRList(nameStart, nameEnd string, limit int64) ([][]byte, error) {
	return replyList(c.Do("hrlist", nameStart, nameEnd, limit))
}

// HScan walks field-value pairs of the hash in (keyStart, keyEnd].
func (c *Client) HScan(name, keyStart, keyEnd string, limit int64) (*proto.Scan, error) {
	return replyScan(c.Do("hscan", name, keyStart, keyEnd, limit))
}

// HRScan walks field-value pairs in reverse order.
func (c *Client) HRScan(name, keyStart, keyEnd string, limit int64) (*proto.Scan, error) {
	return replyScan(c.Do("hrscan", name, keyStart, keyEnd, limit))
}

// MultiHSet stores several fields of one hash at once.
func (c *Client) MultiHSet(name string, kvs map[string]interface{}) (int64, error) {
	args := make([]interface{}, 0, len(kvs)*2+1)
	args = append(args, name)
	for k, v := range kvs {
		args = append(args, k, v)
	}
	return replyInt(c.Do("multi_hset", args...))
}

// MultiHGet fetches several fields of one hash, preserving server order.
func (c *Client) MultiHGet(name string, keys ...string) ([]proto.Pair, error) {
	return replyPairs(c.Do("multi_hget", prefixedArgs(name, keys)...))
}

// MultiHDel removes several fields of one hash.
func (c *Client) MultiHDel(name string, keys ...string) (int64, error) {
	return replyInt(c.Do("multi_hdel", prefixedArgs(name, keys)...))
}

// MultiHExists reports field presence per field.
func (c *Client) MultiHExists(name string, keys ...string) ([]proto.IntPair, error) {
	return replyIntPairs(c.Do("multi_hexists", prefixedArgs(name, keys)...))
}

// MultiHSize returns the size of several hashes.
func (c *Client) MultiHSize(names ...string) ([]proto.IntPair, error) {
	return replyIntPairs(c.Do("multi_hsize", stringArgs(names)...))
}
