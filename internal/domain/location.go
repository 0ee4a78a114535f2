package domain

import (
	"fmt"

	"github.com/code19m/errx"
)

const datePathLayout = "2006/01/02"

// StorageLocation describes where a file lives in the object store.
//
// The directory is derived from the identifier's embedded timestamp, not
// from wall-clock time, so two files whose identifiers carry the same
// timestamp land in the same date partition regardless of when they were
// actually uploaded. The fileURL is the externally visible access path;
// the object key used against the store is ObjectKey.
type StorageLocation struct {
	bucketName string
	directory  string
	fileURL    string
}

// GenerateLocation derives a location for a fresh identifier:
// directory = <yyyy/MM/dd of the id timestamp>/<id>,
// fileURL = /<bucket>/<directory>/<fileName>.
func GenerateLocation(bucketName string, id FileID, fileName string) (StorageLocation, error) {
	bucket, err := checkBucketName(bucketName)
	if err != nil {
		return StorageLocation{}, err
	}

	directory := id.Timestamp().Format(datePathLayout) + "/" + id.String()
	fileURL := fmt.Sprintf("/%s/%s/%s", bucket, directory, fileName)

	return StorageLocation{
		bucketName: bucket,
		directory:  directory,
		fileURL:    fileURL,
	}, nil
}

// LocationOf reconstructs a location from stored values without recomputation.
// The bucket name is still validated; directory and fileURL are trusted.
func LocationOf(bucketName, directory, fileURL string) (StorageLocation, error) {
	bucket, err := checkBucketName(bucketName)
	if err != nil {
		return StorageLocation{}, err
	}
	return StorageLocation{
		bucketName: bucket,
		directory:  directory,
		fileURL:    fileURL,
	}, nil
}

func checkBucketName(name string) (string, error) {
	res := ValidateBucketName(name)
	if !res.Valid {
		return "", errx.New(res.Message,
			errx.WithCode(CodeInvalidBucketName),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"bucket_name": name}),
		)
	}
	return res.NormalizedName, nil
}

// BucketName returns the validated bucket name.
func (l StorageLocation) BucketName() string { return l.bucketName }

// Directory returns the date-partitioned directory inside the bucket.
func (l StorageLocation) Directory() string { return l.directory }

// FileURL returns the externally visible access path.
func (l StorageLocation) FileURL() string { return l.fileURL }

// ObjectKey returns the key used against the object store for fileName.
func (l StorageLocation) ObjectKey(fileName string) string {
	return l.directory + "/" + fileName
}
