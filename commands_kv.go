package gossdb

import "gossdb/proto"

// Key-value and server commands.

// Ping checks that the server answers.
func (c *Client) Ping() error {
	_, err := c.Do("ping")
	return err
}

// Version returns the server version string.
func (c *Client) Version() ([]byte, error) {
	return replyBytes(c.Do("version"))
}

// DBSize returns the approximate size of the database in bytes.
func (c *Client) DBSize() (int64, error) {
	return replyInt(c.Do("dbsize"))
}

// Info returns server statistics, optionally narrowed to one section.
func (c *Client) Info(section ...string) ([][]byte, error) {
	args := make([]interface{}, len(section))
	for i, s := range section {
		args[i] = s
	}
	return replyList(c.Do("info", args...))
}

// Set stores a value under key.
func (c *Client) Set(key string, value interface{}) (int64, error) {
	return replyInt(c.Do("set", key, value))
}

// Setx stores a value with a time-to-live in seconds.
func (c *Client) Setx(key string, value interface{}, ttl int64) (int64, error) {
	return replyInt(c.Do("setx", key, value, ttl))
}

// Setnx stores a value only when the key does not exist yet.
func (c *Client) Setnx(key string, value interface{}) (int64, error) {
	return replyInt(c.Do("setnx", key, value))
}

// Expire sets a time-to-live in seconds on an existing key.
func (c *Client) Expire(key string, ttl int64) (int64, error) {
	return replyInt(c.Do("expire", key, ttl))
}

// TTL returns the remaining time-to-live of a key in seconds.
func (c *Client) TTL(key string) (int64, error) {
	return replyInt(c.Do("ttl", key))
}

// Get returns the value of key, nil when the key does not exist.
func (c *Client) Get(key string) ([]byte, error) {
	return replyBytes(c.Do("get", key))
}

// GetSet stores a value and returns the previous one.
func (c *Client) GetSet(key string, value interface{}) ([]byte, error) {
	return replyBytes(c.Do("getset", key, value))
}

// Del removes a key.
func (c *Client) Del(key string) (int64, error) {
	return replyInt(c.Do("del", key))
}

// Incr increments the integer value of key by delta.
func (c *Client) Incr(key string, delta int64) (int64, error) {
	return replyInt(c.Do("incr", key, delta))
}

// Decr decrements the integer value of key by delta.
func (c *Client) Decr(key string, delta int64) (int64, error) {
	return replyInt(c.Do("decr", key, delta))
}

// Exists reports whether key is present.
func (c *Client) Exists(key string) (int64, error) {
	return replyInt(c.Do("exists", key))
}

// GetBit returns the bit at offset.
func (c *Client) GetBit(key string, offset int64) (int64, error) {
	return replyInt(c.Do("getbit", key, offset))
}

// SetBit sets the bit at offset to val (0 or 1).
func (c *Client) SetBit(key string, offset, val int64) (int64, error) {
	return replyInt(c.Do("setbit", key, offset, val))
}

// BitCount counts set bits in the byte range [start, end].
func (c *Client) BitCount(key string, start, end int64) (int64, error) {
	return replyInt(c.Do("bitcount", key, start, end))
}

// CountBit counts set bits starting at start over size bytes.
func (c *Client) CountBit(key string, start, size int64) (int64, error) {
	return replyInt(c.Do("countbit", key, start, size))
}

// Substr returns size bytes of the value starting at start.
func (c *Client) Substr(key string, start, size int64) ([]byte, error) {
	return replyBytes(c.Do("substr", key, start, size))
}

// StrLen returns the length of the value stored at key.
func (c *Client) StrLen(key string) (int64, error) {
	return replyInt(c.Do("strlen", key))
}

// Keys lists keys in (keyStart, keyEnd], at most limit.
func (c *Client) Keys(keyStart, keyEnd string, limit int64) ([][]byte, error) {
	return replyList(c.Do("keys", keyStart, keyEnd, limit))
}

// RKeys lists keys in reverse order.
func (c *Client) RKeys(keyStart, keyEnd string, limit int64) ([][]byte, error) {
	return replyList(c.Do("rkeys", keyStart, keyEnd, limit))
}

// Scan walks key-value pairs in (keyStart, keyEnd], at most limit.
func (c *Client) Scan(keyStart, keyEnd string, limit int64) (*proto.Scan, error) {
	return replyScan(c.Do("scan", keyStart, keyEnd, limit))
}

// RScan walks key-value pairs in reverse order.
func (c *Client) RScan(keyStart, keyEnd string, limit int64) (*proto.Scan, error) {
	return replyScan(c.Do("rscan", keyStart, keyEnd, limit))
}

// MultiSet stores several key-value pairs at once.
func (c *Client) MultiSet(kvs map[string]interface{}) (int64, error) {
	args := make([]interface{}, 0, len(kvs)*2)
	for k, v := range kvs {
		args = append(args, k, v)
	}
	return replyInt(c.Do("multi_set", args...))
}

// MultiGet fetches several keys, preserving server order.
func (c *Client) MultiGet(keys ...string) ([]proto.Pair, error) {
	return replyPairs(c.Do("multi_get", stringArgs(keys)...))
}

// MultiDel removes several keys at once.
func (c *Client) MultiDel(keys ...string) (int64, error) {
	return replyInt(c.Do("multi_del", stringArgs(keys)...))
}

// MultiExists reports key presence per key.
func (c *Client) MultiExists(keys ...string) ([]proto.IntPair, error) {
	return replyIntPairs(c.Do("multi_exists", stringArgs(keys)...))
}

func stringArgs(ss []string) []interface{} {
	args := make([]interface{}, len(ss))
	for i, s := range ss {
		args[i] = s
	}
	return args
}

func prefixedArgs(head string, ss []string) []interface{} {
	args := make([]interface{}, 0, len(ss)+1)
	args = append(args, head)
	for _, s := range ss {
		args = append(args, s)
	}
	return args
}
