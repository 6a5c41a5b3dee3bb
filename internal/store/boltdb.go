package store

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/krail/prototags/internal/tags"
	"github.com/krail/prototags/internal/util"
)

var (
	bucketFiles = []byte("files")
	bucketTags  = []byte("tags")
)

// TagStore is a persistent tag index. Tag keys are prefixed with a hash of
// the owning file so a rescan can replace one file's tags in place.
type TagStore struct {
	db *bbolt.DB
}

func Open(path string) (*TagStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open tag index: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketFiles, bucketTags} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &TagStore{db: db}, nil
}

func (s *TagStore) Close() error {
	return s.db.Close()
}

// FileMeta records one indexed file.
type FileMeta struct {
	Path     string `json:"path"`
	ModTime  int64  `json:"mod_time"`
	TagCount int    `json:"tag_count"`
}

func tagKey(file string, t tags.Tag) []byte {
	key := make([]byte, 16)
	binary.BigEndian.PutUint64(key[:8], util.HashStringToUInt64(file))
	binary.BigEndian.PutUint64(key[8:], util.HashStringToUInt64(t.Name+"\x00"+t.Kind.Name()+"\x00"+strconv.Itoa(t.Line)))
	return key
}

func filePrefix(file string) []byte {
	prefix := make([]byte, 8)
	binary.BigEndian.PutUint64(prefix, util.HashStringToUInt64(file))
	return prefix
}

// PutFileTags replaces the stored tags for meta.Path with ts.
func (s *TagStore) PutFileTags(meta FileMeta, ts []tags.Tag) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		tb := tx.Bucket(bucketTags)

		// drop the file's previous tags
		prefix := filePrefix(meta.Path)
		c := tb.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
		}

		for _, t := range ts {
			data, err := json.Marshal(t)
			if err != nil {
				return err
			}
			if err := tb.Put(tagKey(meta.Path, t), data); err != nil {
				return err
			}
		}

		meta.TagCount = len(ts)
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketFiles).Put([]byte(meta.Path), data)
	})
}

// FileMeta returns the stored metadata for path, if any.
func (s *TagStore) FileMeta(path string) (FileMeta, bool, error) {
	var meta FileMeta
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFiles).Get([]byte(path))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		found = true
		return nil
	})
	return meta, found, err
}

// Files lists all indexed files.
func (s *TagStore) Files() ([]FileMeta, error) {
	var files []FileMeta
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).ForEach(func(k, v []byte) error {
			var meta FileMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			files = append(files, meta)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Lookup returns all tags named exactly name.
func (s *TagStore) Lookup(name string) ([]tags.Tag, error) {
	return s.match(func(t tags.Tag) bool { return t.Name == name })
}

// LookupPrefix returns all tags whose name starts with prefix.
func (s *TagStore) LookupPrefix(prefix string) ([]tags.Tag, error) {
	return s.match(func(t tags.Tag) bool { return strings.HasPrefix(t.Name, prefix) })
}

func (s *TagStore) match(pred func(tags.Tag) bool) ([]tags.Tag, error) {
	var result []tags.Tag
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTags).ForEach(func(k, v []byte) error {
			var t tags.Tag
			if err := json.Unmarshal(v, &t); err != nil {
				return err
			}
			if pred(t) {
				result = append(result, t)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		if result[i].File != result[j].File {
			return result[i].File < result[j].File
		}
		return result[i].Line < result[j].Line
	})
	return result, nil
}

// Clear drops everything from the index.
func (s *TagStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketFiles, bucketTags} {
			if err := tx.DeleteBucket(b); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(b); err != nil {
				return err
			}
		}
		return nil
	})
}
