// Package bcif reads, writes and mutates BinaryCIF files: the compact,
// binary, columnar serialization of CIF/mmCIF tabular data used to exchange
// macromolecular structures.
//
// A File is an ordered list of data blocks; a block is an ordered list of
// categories (tables); a category is an ordered list of columns sharing a
// row count. Each column stores its values as raw bytes plus the chain of
// reversible transforms that produced them, and optionally a parallel mask
// marking rows as present, not-applicable or unknown. Columns are decoded
// lazily on first access and the result is cached.
//
// # Reading
//
//	file, err := bcif.ReadFile("1abc.bcif.gz") // container compression is detected
//	if err != nil {
//	    return err
//	}
//	cat := file.Category("atom_site")
//	xs, err := cat.Column("Cartn_x").Values()
//
// # Writing
//
//	cat, _ := bcif.NewCategory("cell", 1)
//	_ = cat.SetColumn("length_a", encoding.Numbers[float64]{10.0})
//	_ = file.SetCategory(cat)
//	err := file.WriteFile("out.bcif", bcif.WithCompression(format.CompressionGzip))
//
// The encoding transforms themselves live in the encoding subpackage; the
// enums naming wire types, encoding kinds and mask codes live in format.
package bcif

// Version is the version string written into the file header of newly
// created files.
const Version = "0.1.0"

const encoderName = "github.com/structbio/bcif"
