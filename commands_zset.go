package gossdb

import "gossdb/proto"

// Sorted-set commands. Scores are signed 64-bit integers.

// ZSet stores the score of a member of zset name.
func (c *Client) ZSet(name, key string, score int64) (int64, error) {
	return replyInt(c.Do("zset", name, key, score))
}

// ZGet returns the score of a member.
func (c *Client) ZGet(name, key string) (int64, error) {
	return replyInt(c.Do("zget", name, key))
}

// ZDel removes a member.
func (c *Client) ZDel(name, key string) (int64, error) {
	return replyInt(c.Do("zdel", name, key))
}

// ZIncr increments the score of a member by delta.
func (c *Client) ZIncr(name, key string, delta int64) (int64, error) {
	return replyInt(c.Do("zincr", name, key, delta))
}

// ZDecr decrements the score of a member by delta.
func (c *Client) ZDecr(name, key string, delta int64) (int64, error) {
	return replyInt(c.Do("zdecr", name, key, delta))
}

// ZExists reports whether the member is present.
func (c *Client) ZExists(name, key string) (int64, error) {
	return replyInt(c.Do("zexists", name, key))
}

// ZSize returns the number of members in the zset.
func (c *Client) ZSize(name string) (int64, error) {
	return replyInt(c.Do("zsize", name))
}

// ZRank returns the ascending rank of a member.
func (c *Client) ZRank(name, key string) (int64, error) {
	return replyInt(c.Do("zrank", name, key))
}

// ZRRank returns the descending rank of a member.
func (c *Client) ZRRank(name, key string) (int64, error) {
	return replyInt(c.Do("zrrank", name, key))
}

// ZClear removes the whole zset.
func (c *Client) ZClear(name string) (int64, error) {
	return replyInt(c.Do("zclear", name))
}

// ZCount counts members with score in [start, end].
func (c *Client) ZCount(name string, start, end int64) (int64, error) {
	return replyInt(c.Do("zcount", name, start, end))
}

// ZSum sums the scores of members with score in [start, end].
func (c *Client) ZSum(name string, start, end int64) (int64, error) {
	return replyInt(c.Do("zsum", name, start, end))
}

// ZAvg averages the scores of members with score in [start, end].
func (c *Client) ZAvg(name string, start, end int64) (float64, error) {
	return replyFloat(c.Do("zavg", name, start, end))
}

// ZRemRangeByRank removes members with rank in [start, end].
func (c *Client) ZRemRangeByRank(name string, start, end int64) (int64, error) {
	return replyInt(c.Do("zremrangebyrank", name, start, end))
}

// ZRemRangeByScore removes members with score in [start, end].
func (c *Client) ZRemRangeByScore(name string, start, end int64) (int64, error) {
	return replyInt(c.Do("zremrangebyscore", name, start, end))
}

// ZList lists zset names in (nameStart, nameEnd], at most limit.
func (c *Client) ZList(nameStart, nameEnd string, limit int64) ([][]byte, error) {
	return replyList(c.Do("zlist", nameStart, nameEnd, limit))
}

// ZRList lists zset names in reverse order.
func (c *Client) ZRList(nameStart, nameEnd string, limit int64) ([][]byte, error) {
	return replyList(c.Do("zrlist", nameStart, nameEnd, limit))
}

// ZKeys lists members with score in (scoreStart, scoreEnd], starting after
// keyStart, at most limit.
func (c *Client) ZKeys(name, keyStart string, scoreStart, scoreEnd interface{}, limit int64) ([][]byte, error) {
	return replyList(c.Do("zkeys", name, keyStart, scoreStart, scoreEnd, limit))
}

// ZRange pages members by ascending rank.
func (c *Client) ZRange(name string, offset, limit int64) ([]proto.IntPair, error) {
	return replyIntPairs(c.Do("zrange", name, offset, limit))
}

// ZRRange pages members by descending rank.
func (c *Client) ZRRange(name string, offset, limit int64) ([]proto.IntPair, error) {
	return replyIntPairs(c.Do("zrrange", name, offset, limit))
}

// ZPopFront removes and returns up to limit members with the lowest scores.
func (c *Client) ZPopFront(name string, limit int64) ([]proto.IntPair, error) {
	return replyIntPairs(c.Do("zpop_front", name, limit))
}

// ZPopBack removes and returns up to limit members with the highest scores.
func (c *Client) ZPopBack(name string, limit int64) ([]proto.IntPair, error) {
	return replyIntPairs(c.Do("zpop_back", name, limit))
}

// ZScan walks member-score pairs ordered by score.
func (c *Client) ZScan(name, keyStart string, scoreStart, scoreEnd interface{}, limit int64) (*proto.IntScan, error) {
	return replyIntScan(c.Do("zscan", name, keyStart, scoreStart, scoreEnd, limit))
}

// ZRScan walks member-score pairs in reverse score order.
func (c *Client) ZRScan(name, keyStart string, scoreStart, scoreEnd interface{}, limit int64) (*proto.IntScan, error) {
	return replyIntScan(c.Do("zrscan", name, keyStart, scoreStart, scoreEnd, limit))
}

// MultiZSet stores the scores of several members at once.
func (c *Client) MultiZSet(name string, kvs map[string]int64) (int64, error) {
	args := make([]interface{}, 0, len(kvs)*2+1)
	args = append(args, name)
	for k, v := range kvs {
		args = append(args, k, v)
	}
	return replyInt(c.Do("multi_zset", args...))
}

// MultiZGet fetches the scores of several members.
func (c *Client) MultiZGet(name string, keys ...string) ([]proto.IntPair, error) {
	return replyIntPairs(c.Do("multi_zget", prefixedArgs(name, keys)...))
}

// MultiZDel removes several members at once.
func (c *Client) MultiZDel(name string, keys ...string) (int64, error) {
	return replyInt(c.Do("multi_zdel", prefixedArgs(name, keys)...))
}

// MultiZExists reports member presence per member.
func (c *Client) MultiZExists(name string, keys ...string) ([]proto.IntPair, error) {
	return replyIntPairs(c.Do("multi_zexists", prefixedArgs(name, keys)...))
}

// MultiZSize returns the size of several zsets.
func (c *Client) MultiZSize(names ...string) ([]proto.IntPair, error) {
	return replyIntPairs(c.Do("multi_zsize", stringArgs(names)...))
}
