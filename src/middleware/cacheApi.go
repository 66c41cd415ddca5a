package middleware

import (
	"bytes"
	"crypto/sha512"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"NFTMarketBackend/src/xhttp"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/stores/kv"
)

const CacheApiPrefix = "apicache:"

type responseCache struct {
	Status int
	Header http.Header
	Data   []byte
}

// CacheApi caches successful responses of hot read endpoints in the kv
// store. A nil store disables caching.
func CacheApi(store kv.Store, expireSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.Next()
			return
		}

		var data xhttp.Response
		bodyLogWrite := &BodyLogWrite{ResponseWriter: c.Writer, body: bytes.NewBufferString("")}
		c.Writer = bodyLogWrite

		cacheKey := CreateKey(c)
		cacheData, err := store.Get(cacheKey)
		if err == nil && cacheData != "" {
			cached := unserialize(cacheData)
			if cached != nil {
				bodyLogWrite.ResponseWriter.WriteHeader(cached.Status)
				for k, vals := range cached.Header {
					for _, v := range vals {
						bodyLogWrite.ResponseWriter.Header().Set(k, v)
					}
				}
				if err := json.Unmarshal(cached.Data, &data); err == nil {
					if data.Code == http.StatusOK {
						bodyLogWrite.ResponseWriter.Write(cached.Data)
						c.Abort()
						return
					}
				}
			}
		}

		c.Next()

		responseBody := bodyLogWrite.body.Bytes()
		if err := json.Unmarshal(responseBody, &data); err == nil {
			if data.Code == http.StatusOK {
				storeCache := responseCache{
					Header: bodyLogWrite.Header().Clone(),
					Status: bodyLogWrite.ResponseWriter.Status(),
					Data:   responseBody,
				}
				store.SetnxEx(cacheKey, serialize(storeCache), expireSeconds)
			}
		}
	}
}

// CreateKey derives the cache key from path, query and request body, hashed
// when too long for a sane redis key.
func CreateKey(c *gin.Context) string {
	var buf bytes.Buffer
	reader := io.TeeReader(c.Request.Body, &buf)
	reqBody, _ := io.ReadAll(reader)
	c.Request.Body = io.NopCloser(&buf)

	path := c.Request.URL.Path
	query := c.Request.URL.RawQuery
	cacheKey := path + "," + query + string(reqBody)
	if len(cacheKey) > 128 {
		hash := sha512.New()
		hash.Write([]byte(cacheKey))
		cacheKey = fmt.Sprintf("%x", hash.Sum(nil))
	}
	return CacheApiPrefix + cacheKey
}

func serialize(cache responseCache) string {
	buf := new(bytes.Buffer)
	enc := gob.NewEncoder(buf)
	if err := enc.Encode(cache); err != nil {
		return ""
	}
	return buf.String()
}

func unserialize(data string) *responseCache {
	var cached responseCache
	dec := gob.NewDecoder(bytes.NewBufferString(data))
	if err := dec.Decode(&cached); err != nil {
		return nil
	}
	return &cached
}
