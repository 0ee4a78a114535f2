package handler

import "github.com/gofiber/fiber/v2"

func (h *Handler) uploadByURL(c *fiber.Ctx) error {
	in, err := h.readUploadInput(c, "publicKey")
	if err != nil {
		return err
	}

	res, err := h.svc.UploadByURL(c.UserContext(), in)
	if err != nil {
		return err
	}

	return c.JSON(okResponse("file uploaded", uploadResponseFrom(res)))
}

func (h *Handler) downloadByURL(c *fiber.Ctx) error {
	res, err := h.svc.DownloadByURL(c.UserContext(), c.Query("fileUrl"), c.Query("publicKey"))
	if err != nil {
		return err
	}

	return sendDownload(c, res)
}

func (h *Handler) queryByURL(c *fiber.Ctx) error {
	info, err := h.svc.QueryByURL(c.UserContext(), c.Query("fileUrl"))
	if err != nil {
		return err
	}

	return c.JSON(okResponse("file found", fileInfoResponseFrom(info)))
}

func (h *Handler) deleteByURL(c *fiber.Ctx) error {
	if err := h.svc.DeleteByURL(c.UserContext(), c.Query("fileUrl")); err != nil {
		return err
	}

	return c.JSON(okResponse("file deleted", nil))
}

func (h *Handler) previewURLByURL(c *fiber.Ctx) error {
	minutes := expiryMinutes(c)

	previewURL, err := h.svc.PreviewURLByURL(c.UserContext(), c.Query("fileUrl"), minutes)
	if err != nil {
		return err
	}

	return c.JSON(okResponse("preview url generated", previewURLResponse{
		PreviewURL:    previewURL,
		ExpiryMinutes: minutes,
	}))
}
