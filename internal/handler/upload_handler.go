package handler

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "golang.org/x/image/webp"
)

const maxUploadBytes = 10 << 20

// UploadImage accepts a multipart image, probes its dimensions, pushes it to
// object storage and records the asset metadata.
func (a *API) UploadImage(c *gin.Context) {
	if a.uploader == nil {
		respondError(c, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "image file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "image exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	if len(data) > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "image exceeds the 10MB limit")
		return
	}

	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		respondError(c, http.StatusBadRequest, "file is not a supported image (jpeg, png, gif, webp)")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = "image/" + format
	}

	objectKey := fmt.Sprintf("uploads/%s/%s%s",
		time.Now().UTC().Format("2006/01"),
		uuid.NewString(),
		strings.ToLower(path.Ext(fileHeader.Filename)),
	)

	url, err := a.uploader.Upload(c.Request.Context(), objectKey, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		a.log.Error("image upload failed", zap.String("objectKey", objectKey), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to store image")
		return
	}

	asset, err := a.images.Record(c.Request.Context(), db.ImageAsset{
		FileName:  fileHeader.Filename,
		ObjectKey: objectKey,
		URL:       url,
		Format:    format,
		Width:     config.Width,
		Height:    config.Height,
		ByteSize:  int64(len(data)),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to record image")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": asset})
}

// ListImages lists the media library for the admin screens.
func (a *API) ListImages(c *gin.Context) {
	items, err := a.images.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load images")
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": items})
}

// DeleteImage removes an image from storage and from the library.
func (a *API) DeleteImage(c *gin.Context) {
	id, err := parseObjectIDParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	asset, err := a.images.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load image")
		return
	}

	if a.uploader != nil {
		if err := a.uploader.Remove(c.Request.Context(), asset.ObjectKey); err != nil {
			a.log.Error("failed to remove stored object", zap.String("objectKey", asset.ObjectKey), zap.Error(err))
			respondError(c, http.StatusInternalServerError, "failed to remove stored object")
			return
		}
	}

	if err := a.images.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
}
