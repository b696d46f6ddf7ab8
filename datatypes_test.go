package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestShowcaseCRUD(t *testing.T) {
	Convey("Given the data type showcase", t, func() {
		handler := newTestServer()

		Convey("When listing a fresh collection", func() {
			rec := doJSON(handler, "GET", "/api/v1/data-types", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)
			body := decodeBody(t, rec)
			// An empty process seeds itself with one sample record.
			So(body["total"], ShouldEqual, 1)
			sample := body["items"].([]any)[0].(map[string]any)
			So(sample["name"], ShouldEqual, "Nelson Road Matchday Pack")
			So(sample["price_gbp"], ShouldEqual, "19.99")
		})

		Convey("When creating a record", func() {
			rec := doJSON(handler, "POST", "/api/v1/data-types", map[string]any{
				"name":       "Away Day Bundle",
				"rating":     4.2,
				"view_count": 7,
				"tags":       []string{"travel"},
			})
			So(rec.Code, ShouldEqual, http.StatusCreated)
			body := decodeBody(t, rec)
			id := body["id"].(string)
			So(id, ShouldNotBeEmpty)
			So(body["priority"], ShouldEqual, "medium")
			_, hasUpdated := body["updated_at"]
			So(hasUpdated, ShouldBeFalse)

			Convey("And fetching it back round-trips", func() {
				rec := doJSON(handler, "GET", "/api/v1/data-types/"+id, nil)
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(decodeBody(t, rec)["name"], ShouldEqual, "Away Day Bundle")
			})

			Convey("And patching it stamps updated_at", func() {
				rec := doJSON(handler, "PATCH", "/api/v1/data-types/"+id, map[string]any{
					"priority": "critical",
					"nickname": "The Big One",
				})
				So(rec.Code, ShouldEqual, http.StatusOK)
				body := decodeBody(t, rec)
				So(body["priority"], ShouldEqual, "critical")
				So(body["nickname"], ShouldEqual, "The Big One")
				So(body["updated_at"], ShouldNotBeNil)
			})

			Convey("And deleting it leaves a 404 behind", func() {
				rec := doJSON(handler, "DELETE", "/api/v1/data-types/"+id, nil)
				So(rec.Code, ShouldEqual, http.StatusNoContent)
				rec = doJSON(handler, "GET", "/api/v1/data-types/"+id, nil)
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When creating with a made-up priority", func() {
			rec := doJSON(handler, "POST", "/api/v1/data-types", map[string]any{
				"name":     "Bad Priority",
				"priority": "ludicrous",
			})
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeBody(t, rec)["message"], ShouldContainSubstring, "priority")
		})

		Convey("When creating without a name", func() {
			rec := doJSON(handler, "POST", "/api/v1/data-types", map[string]any{"rating": 1.0})
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestBinaryRoundTrip(t *testing.T) {
	Convey("Given the binary data endpoints", t, func() {
		handler := newTestServer()
		raw := []byte("biscuits with the boss")

		Convey("When storing base64 data", func() {
			rec := doJSON(handler, "POST", "/api/v1/data-types/binary", map[string]any{
				"data":        base64.StdEncoding.EncodeToString(raw),
				"description": "morning ritual",
			})
			So(rec.Code, ShouldEqual, http.StatusCreated)
			body := decodeBody(t, rec)
			So(body["size_bytes"], ShouldEqual, len(raw))
			sum := sha256.Sum256(raw)
			So(body["checksum_sha256"], ShouldEqual, hex.EncodeToString(sum[:]))

			Convey("And fetching it returns the original bytes", func() {
				rec := doJSON(handler, "GET", "/api/v1/data-types/binary/"+body["binary_id"].(string), nil)
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldEqual, "application/octet-stream")
				So(rec.Body.Bytes(), ShouldResemble, raw)
			})
		})

		Convey("When posting something that isn't base64", func() {
			rec := doJSON(handler, "POST", "/api/v1/data-types/binary", map[string]any{
				"data": "this is not base64!!!",
			})
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeBody(t, rec)["message"], ShouldContainSubstring, "base64")
		})

		Convey("When fetching a binary that never existed", func() {
			rec := doJSON(handler, "GET", "/api/v1/data-types/binary/bin_missing", nil)
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestFileUploadDownload(t *testing.T) {
	Convey("Given the file endpoints", t, func() {
		handler := newTestServer()
		content := []byte("4-5-1 but with flair on the wings\n")

		upload := func() map[string]any {
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			fw, err := mw.CreateFormFile("file", "tactics.txt")
			So(err, ShouldBeNil)
			_, err = fw.Write(content)
			So(err, ShouldBeNil)
			So(mw.Close(), ShouldBeNil)

			req := httptest.NewRequest("POST", "/api/v1/data-types/files/upload", &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusCreated)
			return decodeBody(t, rec)
		}

		Convey("When uploading a tactics sheet", func() {
			meta := upload()
			So(meta["file_id"], ShouldStartWith, "file_")
			So(meta["filename"], ShouldEqual, "tactics.txt")
			So(meta["size_bytes"], ShouldEqual, len(content))
			sum := sha256.Sum256(content)
			So(meta["checksum_sha256"], ShouldEqual, hex.EncodeToString(sum[:]))
			_, err := time.Parse(time.RFC3339, meta["uploaded_at"].(string))
			So(err, ShouldBeNil)
			fileID := meta["file_id"].(string)

			Convey("And downloading it returns the same bytes", func() {
				rec := doJSON(handler, "GET", "/api/v1/data-types/files/"+fileID, nil)
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.Bytes(), ShouldResemble, content)
				So(rec.Header().Get("X-Checksum-SHA256"), ShouldEqual, meta["checksum_sha256"])
				So(rec.Header().Get("Content-Disposition"), ShouldContainSubstring, "tactics.txt")
			})

			Convey("And its metadata is queryable on its own", func() {
				rec := doJSON(handler, "GET", "/api/v1/data-types/files/"+fileID+"/metadata", nil)
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(decodeBody(t, rec)["filename"], ShouldEqual, "tactics.txt")
			})

			Convey("And deleting it frees the ID", func() {
				rec := doJSON(handler, "DELETE", "/api/v1/data-types/files/"+fileID, nil)
				So(rec.Code, ShouldEqual, http.StatusNoContent)
				rec = doJSON(handler, "GET", "/api/v1/data-types/files/"+fileID, nil)
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When uploading without the file field", func() {
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			So(mw.WriteField("notes", "no file here"), ShouldBeNil)
			So(mw.Close(), ShouldBeNil)

			req := httptest.NewRequest("POST", "/api/v1/data-types/files/upload", &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeBody(t, rec)["message"], ShouldContainSubstring, "'file'")
		})
	})
}

func TestContentCollections(t *testing.T) {
	Convey("Given the content collection endpoint", t, func() {
		handler := newTestServer()

		Convey("When posting a mixed bag of items", func() {
			items := []map[string]any{
				{"type": "text", "text": "Be a goldfish."},
				{"type": "image", "url": "https://example.com/believe.png", "alt_text": "the sign"},
				{"type": "link", "url": "https://afcrichmond.co.uk", "title": "Club site"},
				{"type": "text", "text": "Football is life!"},
			}
			rec := doJSON(handler, "POST", "/api/v1/data-types/content-collections?title=Locker+Room+Wall", items)
			So(rec.Code, ShouldEqual, http.StatusCreated)
			body := decodeBody(t, rec)
			So(body["title"], ShouldEqual, "Locker Room Wall")
			So(len(body["items"].([]any)), ShouldEqual, 4)
			counts := body["item_counts"].(map[string]any)
			So(counts["text"], ShouldEqual, 2)
			So(counts["image"], ShouldEqual, 1)
			So(counts["link"], ShouldEqual, 1)
		})

		Convey("When an item claims a type that doesn't exist", func() {
			items := []map[string]any{{"type": "hologram", "text": "future stuff"}}
			rec := doJSON(handler, "POST", "/api/v1/data-types/content-collections", items)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeBody(t, rec)["message"], ShouldContainSubstring, "team sheet")
		})
	})
}

func TestTypeDemos(t *testing.T) {
	handler := newTestServer()

	Convey("Given the serialization demo endpoints", t, func() {
		Convey("When fetching the date shapes", func() {
			rec := doJSON(handler, "GET", "/api/v1/data-types/types/dates", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)
			body := decodeBody(t, rec)
			_, err := time.Parse(time.RFC3339, body["now_rfc3339"].(string))
			So(err, ShouldBeNil)
			_, err = time.Parse("2006-01-02", body["date_only"].(string))
			So(err, ShouldBeNil)
			So(body["match_duration"], ShouldEqual, "1h30m0s")
		})

		Convey("When fetching the number shapes", func() {
			rec := doJSON(handler, "GET", "/api/v1/data-types/types/numbers", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)
			body := decodeBody(t, rec)
			// Decimals travel as strings so clients keep their precision.
			So(body["decimal_string"], ShouldEqual, "19.99")
			So(body["int_small"], ShouldEqual, 42)
			So(body["negative"], ShouldEqual, -273.15)
		})

		Convey("When fetching the string shapes", func() {
			rec := doJSON(handler, "GET", "/api/v1/data-types/types/strings", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)
			body := decodeBody(t, rec)
			So(body["emoji"], ShouldEqual, "⚽🫖🍪")
			So(body["empty"], ShouldEqual, "")
			So(body["multiline"], ShouldContainSubstring, "\n")
		})

		Convey("When fetching the collection shapes", func() {
			rec := doJSON(handler, "GET", "/api/v1/data-types/types/collections", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)
			body := decodeBody(t, rec)
			So(len(body["string_list"].([]any)), ShouldEqual, 4)
			So(len(body["empty_list"].([]any)), ShouldEqual, 0)
		})

		Convey("When fetching the special shapes", func() {
			rec := doJSON(handler, "GET", "/api/v1/data-types/types/special", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)
			body := decodeBody(t, rec)
			So(body["null_value"], ShouldBeNil)
			So(body["true_value"], ShouldEqual, true)
			decoded, err := base64.StdEncoding.DecodeString(body["base64_bytes"].(string))
			So(err, ShouldBeNil)
			So(string(decoded), ShouldEqual, "biscuits")
		})
	})
}
