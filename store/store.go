/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package store keeps swisstd's objects in an Amazon S3 bucket. A Bucket
 * serves two roles: it implements httpcache.Cache so remote result logs and
 * roster pages are cached between runs, and it publishes rendered reports.
 */
package store

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const cachePrefix = "httpcache"

// Bucket stores and retrieves objects in one S3 bucket.
type Bucket struct {
	// Config is the AWS configuration loaded by Init.
	Config aws.Config

	// Client may be replaced by callers after Init, e.g. to point at an
	// S3-compatible endpoint.
	Client *s3.Client

	name string

	// gzip compresses cache entries; their keys get a ".gz" suffix
	gzip bool

	logErrors bool

	// httpcache.Cache has no context parameter so cache calls use this one
	ctx context.Context
}

// New returns a Bucket for bucketName. Init must be called before use.
func New(ctx context.Context, bucketName string, gzipIn bool,
	logErrorsIn bool) *Bucket {

	return &Bucket{
		ctx:       ctx,
		name:      bucketName,
		gzip:      gzipIn,
		logErrors: logErrorsIn,
	}
}

func (b *Bucket) Name() string {
	return b.name
}

// Init loads the default AWS configuration (environment variables, shared
// config and credentials files) and verifies the bucket can be listed.
func (b *Bucket) Init() error {
	if b.name == "" {
		return fmt.Errorf("store.init: no bucket configured")
	}

	var err error
	b.Config, err = config.LoadDefaultConfig(b.ctx)
	if err != nil {
		return fmt.Errorf("store.init: failed to load AWS config: %w", err)
	}
	b.Client = s3.NewFromConfig(b.Config)

	if _, err = b.Client.HeadBucket(b.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(b.name),
	}); err != nil {
		return fmt.Errorf("store.init: head bucket failed for %s: %w", b.name,
			err)
	}
	if _, err = b.Client.ListObjectsV2(b.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(b.name),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("store.init: list objects failed for %s: %w", b.name,
			err)
	}

	return nil
}

// Get implements httpcache.Cache.
func (b *Bucket) Get(key string) ([]byte, bool) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(b.cacheObjectKey(key)),
	}

	resp, err := b.Client.GetObject(b.ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		// NoSuchKey is an ordinary cache miss
		if b.logErrors &&
			!(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			log.Printf("store.get: failed to get %v/%v: %v", b.name,
				*input.Key, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	rdr := resp.Body
	if b.gzip {
		rdr, err = gzip.NewReader(rdr)
		if err != nil {
			b.logf("store.get: failed to open compressed %v/%v: %v", b.name,
				*input.Key, err)
			return nil, false
		}
		defer rdr.Close()
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		b.logf("store.get: failed to read %v/%v: %v", b.name, *input.Key, err)
		return nil, false
	}

	return data, true
}

// Set implements httpcache.Cache.
func (b *Bucket) Set(key string, data []byte) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(b.cacheObjectKey(key)),
		Body:   bytes.NewReader(data),
	}

	if b.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			b.logf("store.set: failed to gzip %v/%v: %v", b.name, *input.Key,
				err)
			return
		}
		if err := gw.Close(); err != nil {
			b.logf("store.set: failed to close gzip writer for %v/%v: %v",
				b.name, *input.Key, err)
			return
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := b.Client.PutObject(b.ctx, input); err != nil {
		b.logf("store.set: put failed for %v/%v: %v", b.name, *input.Key, err)
	}
}

// Delete implements httpcache.Cache.
func (b *Bucket) Delete(key string) {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(b.cacheObjectKey(key)),
	}

	if _, err := b.Client.DeleteObject(b.ctx, input); err != nil {
		b.logf("store.delete: delete failed for %v/%v: %v", b.name,
			*input.Key, err)
	}
}

// Publish uploads a rendered report under key and returns its s3:// URL.
// Unlike the cache methods it reports failures to the caller.
func (b *Bucket) Publish(ctx context.Context, key string, contentType string,
	body []byte) (string, error) {

	key = ReportKey(key)
	_, err := b.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(b.name),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return "", fmt.Errorf("store.publish: put failed for %v/%v: %w",
			b.name, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", b.name, key), nil
}

// ReportKey normalizes a report object key: no leading slash, no "..".
func ReportKey(key string) string {
	return strings.TrimPrefix(path.Clean("/"+key), "/")
}

func (b *Bucket) cacheObjectKey(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	objKey := fmt.Sprintf("%v/%v", cachePrefix, hex.EncodeToString(h.Sum(nil)))
	if b.gzip {
		objKey += ".gz"
	}

	return objKey
}

func (b *Bucket) logf(format string, args ...any) {
	if b.logErrors {
		log.Printf(format, args...)
	}
}
