package cli

import (
	"context"
	"log"
)

// AttachmentUploadURL requests a presigned upload URL for a task attachment.
// The returned key identifies the object for later download.
//
// Usage: upload <taskID> <fileName>
func (a *App) AttachmentUploadURL(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: upload <taskID> <fileName>")
		return nil
	}

	key, url, err := a.taskService.GetAttachmentUploadURL(ctx, args[0], args[1])
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("Key:", key)
	printlnFn("Upload URL:", url)
	return nil
}

// AttachmentDownloadURL requests a presigned download URL for a stored
// attachment.
//
// Usage: download <key>
func (a *App) AttachmentDownloadURL(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: download <key>")
		return nil
	}

	url, err := a.taskService.GetAttachmentDownloadURL(ctx, args[0])
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("Download URL:", url)
	return nil
}
