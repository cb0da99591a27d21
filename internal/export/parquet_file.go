package export

import (
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go/source"

	"github.com/chrisdamba/foodcatalogsim/internal/cloudwriter"
)

// CloudParquetFile lets the parquet writer stream into a CloudWriter. It only
// supports forward writes.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

var _ source.ParquetFile = (*CloudParquetFile)(nil)

func NewCloudParquetFile(w cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: w}
}

// Open and Create return the receiver: the object already exists once the
// writer does.
func (c *CloudParquetFile) Open(string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Create(string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	default:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read([]byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (int, error) {
	n, err := c.cloudWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
