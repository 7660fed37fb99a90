package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/dzjyyds666/iniq/pkg"
)

type GetParams struct {
	Input      string `json:"input"`       // input file path
	Section    string `json:"section"`     // section to look in, global when empty
	Key        string `json:"key"`         // key to look up
	Type       string `json:"type"`        // value type
	Default    string `json:"default"`     // returned when the key is missing
	ShowStatus bool   `json:"show_status"` // print the lookup status
}

var getParams = &GetParams{}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Read one value from an ini file",
	Long: `Read one value from an ini file.

The value is converted to the requested type. When the section or key is
missing the default is printed instead. Types: string, bool, int, int8,
int16, int32, int64, uint, uint8, uint16, uint32, uint64, float, double.`,
	RunE: getRun,
}

func init() {
	getCmd.Flags().StringVarP(&getParams.Input, "input", "i", "", "input file path")
	getCmd.Flags().StringVarP(&getParams.Section, "section", "s", "", "section name (default global)")
	getCmd.Flags().StringVarP(&getParams.Key, "key", "k", "", "key name")
	getCmd.Flags().StringVarP(&getParams.Type, "type", "t", "string", "value type")
	getCmd.Flags().StringVarP(&getParams.Default, "default", "d", "", "default value")
	getCmd.Flags().BoolVar(&getParams.ShowStatus, "show-status", false, "print the lookup status before the value")
}

func getRun(cmd *cobra.Command, args []string) error {
	if err := pkg.CheckInputFile(getParams.Input); err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	doc, err := ini.Load(getParams.Input, opts...)
	if err != nil {
		return err
	}

	value, status, err := readTyped(doc, getParams.Section, getParams.Key, getParams.Type, getParams.Default)
	if err != nil {
		return err
	}
	if status == ini.StatusError {
		return fmt.Errorf("invalid lookup: section %q key %q", getParams.Section, getParams.Key)
	}

	out := cmd.OutOrStdout()
	if getParams.ShowStatus {
		fmt.Fprintf(out, "%s\t%s\n", status, value)
		return nil
	}
	fmt.Fprintln(out, value)
	return nil
}

// readTyped looks key up as typ and formats the result back to text.
func readTyped(doc *ini.Document, section, key, typ, def string) (string, ini.Status, error) {
	switch typ {
	case "", "string":
		v, status := doc.ReadString(section, key, def)
		return v, status, nil
	case "bool":
		d := false
		if def != "" {
			var err error
			if d, err = strconv.ParseBool(def); err != nil {
				return "", ini.StatusError, fmt.Errorf("default %q is not a bool: %w", def, err)
			}
		}
		v, status := doc.ReadBool(section, key, d)
		return strconv.FormatBool(v), status, nil
	case "int8":
		return readSigned[int8](doc, section, key, def, 8)
	case "int16":
		return readSigned[int16](doc, section, key, def, 16)
	case "int32":
		return readSigned[int32](doc, section, key, def, 32)
	case "int", "int64":
		return readSigned[int64](doc, section, key, def, 64)
	case "uint8":
		return readUnsigned[uint8](doc, section, key, def, 8)
	case "uint16":
		return readUnsigned[uint16](doc, section, key, def, 16)
	case "uint32":
		return readUnsigned[uint32](doc, section, key, def, 32)
	case "uint", "uint64":
		return readUnsigned[uint64](doc, section, key, def, 64)
	case "float":
		return readFloat[float32](doc, section, key, def, 32)
	case "double":
		return readFloat[float64](doc, section, key, def, 64)
	}
	return "", ini.StatusError, fmt.Errorf("unknown type %q", typ)
}

func readSigned[T ini.Signed](doc *ini.Document, section, key, def string, bits int) (string, ini.Status, error) {
	var d int64
	if def != "" {
		var err error
		if d, err = strconv.ParseInt(def, 0, bits); err != nil {
			return "", ini.StatusError, fmt.Errorf("default %q is not a %d-bit integer: %w", def, bits, err)
		}
	}
	v, status := ini.ReadSigned(doc, section, key, T(d))
	return strconv.FormatInt(int64(v), 10), status, nil
}

func readUnsigned[T ini.Unsigned](doc *ini.Document, section, key, def string, bits int) (string, ini.Status, error) {
	var d uint64
	if def != "" {
		var err error
		if d, err = strconv.ParseUint(def, 0, bits); err != nil {
			return "", ini.StatusError, fmt.Errorf("default %q is not a %d-bit unsigned integer: %w", def, bits, err)
		}
	}
	v, status := ini.ReadUnsigned(doc, section, key, T(d))
	return strconv.FormatUint(uint64(v), 10), status, nil
}

func readFloat[T ini.Float](doc *ini.Document, section, key, def string, bits int) (string, ini.Status, error) {
	var d float64
	if def != "" {
		var err error
		if d, err = strconv.ParseFloat(def, bits); err != nil {
			return "", ini.StatusError, fmt.Errorf("default %q is not a number: %w", def, err)
		}
	}
	v, status := ini.ReadFloat(doc, section, key, T(d))
	return strconv.FormatFloat(float64(v), 'g', -1, bits), status, nil
}
