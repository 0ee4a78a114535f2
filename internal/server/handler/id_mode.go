package handler

import "github.com/gofiber/fiber/v2"

func (h *Handler) uploadByID(c *fiber.Ctx) error {
	in, err := h.readUploadInput(c, "privateKey")
	if err != nil {
		return err
	}

	res, err := h.svc.UploadByID(c.UserContext(), in)
	if err != nil {
		return err
	}

	return c.JSON(okResponse("file uploaded", uploadResponseFrom(res)))
}

func (h *Handler) downloadByID(c *fiber.Ctx) error {
	res, err := h.svc.DownloadByID(c.UserContext(), c.Query("fileUuid"), c.Query("privateKey"))
	if err != nil {
		return err
	}

	return sendDownload(c, res)
}

func (h *Handler) queryByID(c *fiber.Ctx) error {
	info, err := h.svc.QueryByID(c.UserContext(), c.Query("fileUuid"))
	if err != nil {
		return err
	}

	return c.JSON(okResponse("file found", fileInfoResponseFrom(info)))
}

func (h *Handler) deleteByID(c *fiber.Ctx) error {
	if err := h.svc.DeleteByID(c.UserContext(), c.Query("fileUuid")); err != nil {
		return err
	}

	return c.JSON(okResponse("file deleted", nil))
}

func (h *Handler) previewURLByID(c *fiber.Ctx) error {
	minutes := expiryMinutes(c)

	previewURL, err := h.svc.PreviewURLByID(c.UserContext(), c.Query("fileUuid"), minutes)
	if err != nil {
		return err
	}

	return c.JSON(okResponse("preview url generated", previewURLResponse{
		PreviewURL:    previewURL,
		ExpiryMinutes: minutes,
	}))
}
