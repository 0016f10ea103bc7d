// Copyright 2014 The Gogs Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package charset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"code.gitea.io/transprune/modules/log"

	"github.com/gogs/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// UTF8BOM is the utf-8 byte-order marker
var UTF8BOM = []byte{'\xef', '\xbb', '\xbf'}

// ErrUnknownEncoding is returned when the detected charset has no decoder
var ErrUnknownEncoding = errors.New("unknown encoding")

type ConvertOpts struct {
	KeepBOM bool

	// AnsiCharset is used when the detector can't decide, empty means "fail"
	AnsiCharset string

	// DetectedCharsetScore gives a tie break between results with the same confidence, lower is preferred
	DetectedCharsetScore map[string]int
}

// ToUTF8 converts content to UTF8 encoding, the detected charset label is returned as well
func ToUTF8(content []byte, opts ConvertOpts) (string, string, error) {
	charsetLabel, err := DetectEncoding(content, opts)
	if err != nil {
		return "", "", err
	} else if charsetLabel == "UTF-8" {
		return string(MaybeRemoveBOM(content, opts)), charsetLabel, nil
	}

	encoding, _ := charset.Lookup(charsetLabel)
	if encoding == nil {
		return "", charsetLabel, fmt.Errorf("%w: %s", ErrUnknownEncoding, charsetLabel)
	}

	result, _, err := transform.Bytes(encoding.NewDecoder(), content)
	if err != nil {
		return "", charsetLabel, fmt.Errorf("decode %s: %w", charsetLabel, err)
	}
	return string(MaybeRemoveBOM(result, opts)), charsetLabel, nil
}

// MaybeRemoveBOM removes a UTF-8 BOM from a []byte when opts.KeepBOM is false
func MaybeRemoveBOM(content []byte, opts ConvertOpts) []byte {
	if opts.KeepBOM {
		return content
	}
	if len(content) > 2 && bytes.Equal(content[0:3], UTF8BOM) {
		return content[3:]
	}
	return content
}

// DetectEncoding detect the encoding of the whole content
func DetectEncoding(content []byte, opts ConvertOpts) (string, error) {
	if utf8.Valid(content) {
		log.Trace("Detected encoding: utf-8 (fast)")
		return "UTF-8", nil
	}

	textDetector := chardet.NewTextDetector()
	var detectContent []byte
	if len(content) < 1024 {
		// Check if original content is valid
		if _, err := textDetector.DetectBest(content); err != nil {
			return "", err
		}
		times := 1024 / len(content)
		detectContent = make([]byte, 0, times*len(content))
		for i := 0; i < times; i++ {
			detectContent = append(detectContent, content...)
		}
	} else {
		detectContent = content
	}

	// Now we can't use DetectBest or just results[0] because the result isn't stable - so we need a tie break
	results, err := textDetector.DetectAll(detectContent)
	if err != nil {
		if err == chardet.NotDetectedError && len(opts.AnsiCharset) > 0 {
			log.Debug("Using default AnsiCharset: %s", opts.AnsiCharset)
			return opts.AnsiCharset, nil
		}
		return "", err
	}

	topConfidence := results[0].Confidence
	topResult := results[0]
	priority, has := opts.DetectedCharsetScore[strings.ToLower(strings.TrimSpace(topResult.Charset))]
	for _, result := range results {
		// As results are sorted in confidence order - if we have a different confidence
		// we know it's less than the current confidence and can break out of the loop early
		if result.Confidence != topConfidence {
			break
		}

		resultPriority, resultHas := opts.DetectedCharsetScore[strings.ToLower(strings.TrimSpace(result.Charset))]
		if resultHas && (!has || resultPriority < priority) {
			topResult = result
			priority = resultPriority
			has = true
		}
	}

	log.Debug("Detected encoding: %s", topResult.Charset)
	return topResult.Charset, nil
}
