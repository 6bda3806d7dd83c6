package gossdb

import (
	"fmt"

	"gossdb/proto"
)

// Reply coercion helpers between Do's dynamic result and the typed command
// surface. An absent value (not_found) maps to each type's zero value,
// except for the scan helpers, which return an empty page.

func replyInt(v interface{}, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	switch r := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return r, nil
	}
	return 0, fmt.Errorf("gossdb: unexpected reply type %T", v)
}

func replyFloat(v interface{}, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	switch r := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return r, nil
	}
	return 0, fmt.Errorf("gossdb: unexpected reply type %T", v)
}

func replyBytes(v interface{}, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	switch r := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return r, nil
	}
	return nil, fmt.Errorf("gossdb: unexpected reply type %T", v)
}

func replyList(v interface{}, err error) ([][]byte, error) {
	if err != nil {
		return nil, err
	}
	switch r := v.(type) {
	case nil:
		return nil, nil
	case [][]byte:
		return r, nil
	}
	return nil, fmt.Errorf("gossdb: unexpected reply type %T", v)
}

func replyPairs(v interface{}, err error) ([]proto.Pair, error) {
	if err != nil {
		return nil, err
	}
	switch r := v.(type) {
	case nil:
		return nil, nil
	case []proto.Pair:
		return r, nil
	}
	return nil, fmt.Errorf("gossdb: unexpected reply type %T", v)
}

func replyIntPairs(v interface{}, err error) ([]proto.IntPair, error) {
	if err != nil {
		return nil, err
	}
	switch r := v.(type) {
	case nil:
		return nil, nil
	case []proto.IntPair:
		return r, nil
	}
	return nil, fmt.Errorf("gossdb: unexpected reply type %T", v)
}

func replyScan(v interface{}, err error) (*proto.Scan, error) {
	if err != nil {
		return nil, err
	}
	switch r := v.(type) {
	case nil:
		return &proto.Scan{}, nil
	case *proto.Scan:
		return r, nil
	}
	return nil, fmt.Errorf("gossdb: unexpected reply type %T", v)
}

func replyIntScan(v interface{}, err error) (*proto.IntScan, error) {
	if err != nil {
		return nil, err
	}
	switch r := v.(type) {
	case nil:
		return &proto.IntScan{}, nil
	case *proto.IntScan:
		return r, nil
	}
	return nil, fmt.Errorf("gossdb: unexpected reply type %T", v)
}
